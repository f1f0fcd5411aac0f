package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestUserModel_TextColumns(t *testing.T) {
	userSchema, err := schema.Parse(&UserModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Equal(t, "users", userSchema.Table)

	for _, column := range []string{"email", "first_name", "last_name", "password_hash"} {
		field := userSchema.LookUpField(column)
		require.NotNil(t, field, column)
		assert.Equal(t, schema.DataType("text"), field.DataType, column)
		assert.Zero(t, field.Size, column)
	}

	email := userSchema.LookUpField("email")
	assert.True(t, email.NotNull)

	emailIndex := userSchema.LookIndex("users_email_key")
	require.NotNil(t, emailIndex)
	assert.Equal(t, "UNIQUE", emailIndex.Class)
}
