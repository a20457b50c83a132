package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRememberedViews(t *testing.T) {
	r := BuildRegistry()
	views := r.RememberedViews()
	require.Len(t, views, 12)
	for _, v := range []View{ViewWiFi, ViewBLE, ViewGPS, ViewWiFiScanning, ViewWiFiSettings, ViewBLEChameleon} {
		assert.Contains(t, views, v)
	}
	for _, v := range []View{ViewMain, ViewSettings, ViewConfiguration} {
		assert.NotContains(t, views, v)
	}
}

func TestRegistryVariantHosts(t *testing.T) {
	r := BuildRegistry()
	hosts := map[View]string{
		ViewWiFiCapture:  VariantsSniff,
		ViewWiFiAttack:   VariantsBeacon,
		ViewWiFiSettings: VariantsRGB,
		ViewBLEAttack:    VariantsBLESpam,
	}
	for _, page := range r.Pages() {
		id, ok := hosts[page.View]
		if !ok {
			assert.Nil(t, page.Variants, "page %s", page.View)
			continue
		}
		require.NotNil(t, page.Variants, "page %s", page.View)
		assert.Equal(t, id, page.Variants.ID)
		// row 0 shows the first variant until the user cycles
		assert.Equal(t, page.Variants.At(0).Label, page.Entries[0].Label)
	}
}

func TestCatalogInvariants(t *testing.T) {
	r := BuildRegistry()
	for _, page := range r.Pages() {
		require.NotEmpty(t, page.Entries, "page %s", page.View)
		for i, entry := range page.Entries {
			d := entry.Descriptor
			if d == nil {
				continue
			}
			assert.False(t, d.NeedsInput && d.NeedsConfirmation, "%s row %d gates on both input and confirmation", page.View, i)
			if d.NeedsInput {
				assert.NotEmpty(t, d.InputPrompt, "%s row %d", page.View, i)
				assert.False(t, strings.HasSuffix(d.Command, "\n"), "%s row %d input verb ends with newline", page.View, i)
			} else {
				assert.True(t, strings.HasSuffix(d.Command, "\n"), "%s row %d %q lacks newline", page.View, i, d.Command)
			}
			if d.NeedsConfirmation {
				assert.NotEmpty(t, d.ConfirmHeader)
				assert.NotEmpty(t, d.ConfirmBody)
			}
			if d.HasCapture() {
				assert.NotEmpty(t, d.Capture.Prefix)
				assert.NotEmpty(t, d.Capture.Extension)
				assert.NotEmpty(t, d.Capture.Folder)
			}
		}
	}
}

func TestConnectDescriptorIsTwoStage(t *testing.T) {
	r := BuildRegistry()
	page, ok := r.Page(ViewWiFiNetwork)
	require.True(t, ok)
	var found int
	for _, entry := range page.Entries {
		if entry.Descriptor != nil && entry.Descriptor.IsConnect() {
			found++
			assert.Equal(t, "Connect To WiFi", entry.Label)
		}
	}
	assert.Equal(t, 1, found)
}

func TestPageDescriptorOutOfRange(t *testing.T) {
	r := BuildRegistry()
	page, _ := r.Page(ViewGPS)
	_, ok := page.Descriptor(len(page.Entries))
	assert.False(t, ok)
	_, ok = page.Descriptor(-1)
	assert.False(t, ok)
	d, ok := page.Descriptor(0)
	require.True(t, ok)
	assert.Equal(t, "gpsinfo\n", d.Command)
}

func TestViewCategory(t *testing.T) {
	cases := map[View]View{
		ViewWiFiScanning:  ViewWiFi,
		ViewWiFiSettings:  ViewWiFi,
		ViewBLECapture:    ViewBLE,
		ViewGPS:           ViewGPS,
		ViewSettings:      ViewMain,
		ViewConfiguration: ViewMain,
		ViewTerminal:      ViewMain,
	}
	for v, want := range cases {
		assert.Equal(t, want, v.Category(), "view %s", v)
	}
}

func TestVariantTableWraps(t *testing.T) {
	tables := VariantTables()
	require.Len(t, tables, 4)
	sniff := tables[VariantsSniff]
	assert.Equal(t, "< Sniff Pwn >", sniff.At(-1).Label)
	assert.Equal(t, "< Sniff WPS >", sniff.At(sniff.Len()).Label)
	assert.True(t, tables[VariantsBeacon].IsCustom(3))
	assert.False(t, tables[VariantsRGB].IsCustom(0))
	var missing *VariantTable
	assert.Equal(t, 0, missing.Len())
	assert.Equal(t, Variant{}, missing.At(2))
}
