package authorization

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

const rbacModel = `
[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (r.dom == p.dom || p.dom == "*") && (r.obj == p.obj || p.obj == "*") && (r.act == p.act || p.act == "*")
`

// rolePolicies is the capability matrix. Policies use the wildcard domain;
// owner scoping is resolved against the operators table before enforcement.
var rolePolicies = [][]string{
	{"role:admin", "*", "*", "*"},
	{"role:operator", "*", ObjectPayment, ActionPaymentCreate},
	{"role:operator", "*", ObjectPayment, ActionPaymentConfirm},
	{"role:operator", "*", ObjectPayment, ActionPaymentMarkPaid},
	{"role:operator", "*", ObjectPayment, ActionPaymentView},
	{"role:operator", "*", ObjectHistory, ActionHistoryView},
	{"role:operator", "*", ObjectSettings, ActionSettingsRead},
}

// NewEnforcer builds the casbin enforcer over the shared database and seeds
// the role capability matrix.
func NewEnforcer(db *gorm.DB) (*casbin.Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", "casbin_rule")
	if err != nil {
		return nil, fmt.Errorf("casbin adapter: %w", err)
	}
	model, err := casbinmodel.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("casbin model: %w", err)
	}
	enforcer, err := casbin.NewEnforcer(model, adapter)
	if err != nil {
		return nil, fmt.Errorf("casbin enforcer: %w", err)
	}
	for _, policy := range rolePolicies {
		if _, err := enforcer.AddPolicy(policy[0], policy[1], policy[2], policy[3]); err != nil {
			return nil, fmt.Errorf("seed policy: %w", err)
		}
	}
	return enforcer, nil
}
