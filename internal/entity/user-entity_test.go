package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserRole(t *testing.T) {
	r, ok := ParseUserRole(" admin ")
	assert.True(t, ok)
	assert.Equal(t, ADMIN, r)

	r, ok = ParseUserRole("Seller")
	assert.True(t, ok)
	assert.Equal(t, SELLER, r)

	_, ok = ParseUserRole("customer")
	assert.False(t, ok)
}

func TestUserRole_Dashboard(t *testing.T) {
	assert.Equal(t, "/admin/dashboard", ADMIN.Dashboard())
	assert.Equal(t, "/seller/dashboard", SELLER.Dashboard())
}
