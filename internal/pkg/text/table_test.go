//go:build unit

package text_test

import (
	"sync"
	"testing"

	"campaign-engine/internal/pkg/text"

	"github.com/stretchr/testify/assert"
)

func TestTableGet(t *testing.T) {
	t.Run("falls back to English defaults", func(t *testing.T) {
		tbl := text.NewTable(nil)
		assert.Equal(t, "Redeem", tbl.Get(text.RoleButtonRedeem))
		assert.Equal(t, "Only %d available", tbl.Get(text.RoleMsgOnlyNAvailable))
	})

	t.Run("active entries win over defaults", func(t *testing.T) {
		tbl := text.NewTable(map[text.Role]string{
			text.RoleButtonRedeem: "แลกรับ",
		})
		assert.Equal(t, "แลกรับ", tbl.Get(text.RoleButtonRedeem))
		assert.Equal(t, "Buy", tbl.Get(text.RoleButtonBuy))
	})

	t.Run("empty entry falls back", func(t *testing.T) {
		tbl := text.NewTable(map[text.Role]string{
			text.RoleButtonBuy: "",
		})
		assert.Equal(t, "Buy", tbl.Get(text.RoleButtonBuy))
	})
}

func TestTableReplace(t *testing.T) {
	tbl := text.NewTable(map[text.Role]string{
		text.RoleButtonRedeem: "old",
	})

	tbl.Replace(map[text.Role]string{
		text.RoleButtonRedeem: "new",
	})

	assert.Equal(t, "new", tbl.Get(text.RoleButtonRedeem))
}

func TestTableConcurrentSwap(t *testing.T) {
	tbl := text.NewTable(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tbl.Replace(map[text.Role]string{text.RoleButtonRedeem: "swapped"})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got := tbl.Get(text.RoleButtonRedeem)
				// Readers always see a complete table, never a partial write.
				assert.Contains(t, []string{"Redeem", "swapped"}, got)
			}
		}()
	}
	wg.Wait()
}

func TestRoleValid(t *testing.T) {
	assert.True(t, text.RoleButtonRedeem.Valid())
	assert.True(t, text.RoleMsgSoldOut.Valid())
	assert.False(t, text.Role("unknown.role").Valid())
	assert.False(t, text.Role("").Valid())
}
