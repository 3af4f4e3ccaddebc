package service

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rayansoft/daftar/internal/errs"
	"github.com/rayansoft/daftar/internal/model"
)

// Claim names carried by the identity token. Signature and lifetime
// verification happen before the claim set reaches this package.
const (
	ClaimUserID          = "user_id"
	ClaimPermissionGroup = "permission_group"
	ClaimOrgUnit         = "org_unit"
	ClaimShift           = "shift"
	ClaimAccountLink     = "account_link"
	ClaimPorID           = "por_id"
)

// ExtractClaims maps a verified claim set onto the typed identity model.
// UserID and PermissionGroup are required for fail-closed authorization;
// everything else defaults to absent. Unknown claim names are ignored.
func ExtractClaims(set jwt.MapClaims) (model.IdentityClaims, error) {
	var c model.IdentityClaims

	uid, ok := intClaim(set, ClaimUserID)
	if !ok {
		return model.IdentityClaims{}, fmt.Errorf("%w: %s", errs.ErrMissingRequiredClaim, ClaimUserID)
	}
	grp, ok := intClaim(set, ClaimPermissionGroup)
	if !ok {
		return model.IdentityClaims{}, fmt.Errorf("%w: %s", errs.ErrMissingRequiredClaim, ClaimPermissionGroup)
	}
	c.UserID = uid
	c.PermissionGroup = grp

	c.OrgUnit = strClaim(set, ClaimOrgUnit)
	c.Shift = strClaim(set, ClaimShift)
	c.AccountLinkCode = strClaim(set, ClaimAccountLink)
	if v, ok := intClaim(set, ClaimPorID); ok {
		c.PorID = &v
	}
	return c, nil
}

// intClaim reads a numeric claim. JSON decoding may deliver numbers as
// float64, json.Number or digit strings depending on the issuer.
func intClaim(set jwt.MapClaims, name string) (int64, bool) {
	v, ok := set[name]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return int64(t), true
	case int64:
		return t, true
	case int:
		return int64(t), true
	case json.Number:
		n, err := t.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		return n, err == nil
	}
	return 0, false
}

// strClaim reads a textual claim, accepting numeric codes as well since
// org units and shifts are issued both ways.
func strClaim(set jwt.MapClaims, name string) string {
	v, ok := set[name]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatInt(int64(t), 10)
	case json.Number:
		return t.String()
	}
	return ""
}
