//go:build unit

package user_test

import (
	"testing"

	"login-clean-starter/internal/domain/user"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual := user.NewIdentity("0000", "Fake Name")

		assert.Equal(t, "0000", actual.ID())
		assert.Equal(t, "Fake Name", actual.DisplayName())
		assert.False(t, actual.IsZero())
	})

	t.Run("ゼロ値判定", func(t *testing.T) {
		assert.True(t, user.Identity{}.IsZero())
		assert.True(t, user.NewIdentity("", "").IsZero())
		assert.False(t, user.NewIdentity("", "Name only").IsZero())
	})

	t.Run("値として比較できる", func(t *testing.T) {
		assert.Equal(t, user.NewIdentity("1111", "Real Name"), user.NewIdentity("1111", "Real Name"))
		assert.NotEqual(t, user.NewIdentity("1111", "Real Name"), user.NewIdentity("0000", "Real Name"))
	})
}
