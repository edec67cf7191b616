package intl_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/polarisui/polaris/intl"
)

type IntlTestSuite struct {
	suite.Suite

	ctx context.Context
}

func TestIntlSuite(t *testing.T) {
	suite.Run(t, &IntlTestSuite{})
}

func (s *IntlTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *IntlTestSuite) TestDefaultsWithoutOverride() {
	service := intl.New(nil)

	s.Equal("Undo", service.Translate(s.ctx, "Polaris.Common.undo"))
	s.Equal("Cancel", service.Translate(s.ctx, "Polaris.Common.cancel"))
	s.Equal("Dismiss", service.Translate(s.ctx, "Polaris.Popover.dismissLabel"))
}

func (s *IntlTestSuite) TestOverrideWins() {
	service := intl.New(intl.Dictionary{
		"Polaris": map[string]any{
			"Common": map[string]any{"undo": "Custom Undo"},
		},
	})

	s.Equal("Custom Undo", service.Translate(s.ctx, "Polaris.Common.undo"))
}

func (s *IntlTestSuite) TestLeafGranularFallback() {
	// The override provides the Common namespace but only one leaf;
	// the remaining leaves still resolve from the defaults.
	service := intl.New(intl.Dictionary{
		"Polaris": map[string]any{
			"Common": map[string]any{"undo": "Custom Undo"},
		},
	})

	s.Equal("Custom Undo", service.Translate(s.ctx, "Polaris.Common.undo"))
	s.Equal("Cancel", service.Translate(s.ctx, "Polaris.Common.cancel"))
	s.Equal("Close", service.Translate(s.ctx, "Polaris.Common.close"))
}

func (s *IntlTestSuite) TestInterpolation() {
	service := intl.New(nil)

	s.Equal("Filter orders", service.TranslateWithMap(s.ctx,
		"Polaris.Filters.filterLabel", map[string]any{"Resource": "orders"}))

	s.Equal("Avatar with initials AB", service.TranslateWithMap(s.ctx,
		"Polaris.Avatar.labelWithInitials", map[string]any{"Initials": "AB"}))
}

func (s *IntlTestSuite) TestPluralization() {
	service := intl.New(nil)

	s.Equal("1 item", service.TranslateWithMapAndCount(s.ctx,
		"Polaris.ResourceList.itemsCount", map[string]any{"Count": 1}, 1))
	s.Equal("3 items", service.TranslateWithMapAndCount(s.ctx,
		"Polaris.ResourceList.itemsCount", map[string]any{"Count": 3}, 3))
}

func (s *IntlTestSuite) TestMissingMessageDegradesToID() {
	service := intl.New(nil)

	s.Equal("Polaris.Missing.key", service.Translate(s.ctx, "Polaris.Missing.key"))
}

func (s *IntlTestSuite) TestLookup() {
	service := intl.New(intl.Dictionary{
		"Polaris": map[string]any{
			"Common": map[string]any{"undo": "Custom Undo"},
		},
	})

	raw, err := service.Lookup("Polaris.Common.undo")
	s.Require().NoError(err)
	s.Equal("Custom Undo", raw)

	raw, err = service.Lookup("Polaris.Common.cancel")
	s.Require().NoError(err)
	s.Equal("Cancel", raw)

	_, err = service.Lookup("Polaris.Missing.key")
	s.Require().ErrorIs(err, intl.ErrMissingTranslation)
}

func (s *IntlTestSuite) TestEquality() {
	override := func() intl.Dictionary {
		return intl.Dictionary{
			"Polaris": map[string]any{
				"Common": map[string]any{"undo": "Custom Undo"},
			},
		}
	}

	s.True(intl.New(override()).Equal(intl.New(override())))
	s.True(intl.New(nil).Equal(intl.New(nil)))
	s.False(intl.New(override()).Equal(intl.New(nil)))
}

func (s *IntlTestSuite) TestLoadLocaleFile() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "messages.sw.yaml")

	content := []byte("Polaris:\n  Common:\n    undo: Rudisha\n")
	s.Require().NoError(os.WriteFile(path, content, 0o600))

	service := intl.New(nil)
	s.Require().NoError(service.LoadLocaleFile(path))

	swahili := intl.ToContext(s.ctx, []string{"sw"})
	s.Equal("Rudisha", service.Translate(swahili, "Polaris.Common.undo"))

	// Languages without a loaded file fall back to the defaults.
	s.Equal("Undo", service.Translate(s.ctx, "Polaris.Common.undo"))

	s.Require().Error(service.LoadLocaleFile(filepath.Join(dir, "missing.toml")))
}

func (s *IntlTestSuite) TestLanguageContextRoundTrip() {
	ctx := intl.ToContext(s.ctx, []string{"sw", "en"})

	s.Equal([]string{"sw", "en"}, intl.FromContext(ctx))
	s.Nil(intl.FromContext(s.ctx))
}
