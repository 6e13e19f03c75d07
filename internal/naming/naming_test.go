package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	for _, name := range []string{"shop", "shop-front", "shop_front2"} {
		assert.NoError(t, Validate(name), name)
	}
	for _, name := range []string{"", "Shop", "2shop", "shop front", "../x"} {
		assert.Error(t, Validate(name), name)
	}
}

func TestDerivedNames(t *testing.T) {
	tests := []struct {
		name, module, title, env, db string
	}{
		{"shop", "Shop", "Shop", "SHOP", "shop"},
		{"shop-front", "ShopFront", "Shop Front", "SHOP_FRONT", "shop_front"},
		{"my_big_app", "MyBigApp", "My Big App", "MY_BIG_APP", "my_big_app"},
		{"app2", "App2", "App2", "APP2", "app2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.module, Module(tt.name))
			assert.Equal(t, tt.title, Title(tt.name))
			assert.Equal(t, tt.env, EnvPrefix(tt.name))
			assert.Equal(t, tt.db, Database(tt.name))
		})
	}
}
