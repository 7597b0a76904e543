package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCompanyRole(t *testing.T) {
	assert.True(t, ValidCompanyRole(CompanyRoleAdmin))
	assert.True(t, ValidCompanyRole(CompanyRoleRecruiter))

	assert.False(t, ValidCompanyRole(""))
	assert.False(t, ValidCompanyRole("owner"))
	assert.False(t, ValidCompanyRole("Admin"))
}
