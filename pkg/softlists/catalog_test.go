package softlists

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testListsYAML = `- name: nes
  description: Nintendo NES cartridges
  software:
    - name: smb
      description: Super Mario Bros.
      year: "1985"
      publisher: Nintendo
      supported: supported
      parts:
        - name: cart
          interface: nes_cart
    - name: smbj
      description: Super Mario Bros. (Japan)
      parent: smb
      year: "1985"
      publisher: Nintendo
      supported: partial
      parts:
        - name: cart
          interface: nes_cart
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(testListsYAML))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	entries, ok := c.Entries("nes")
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, Supported, entries[0].Supported)
	assert.Equal(t, PartiallySupported, entries[1].Supported)

	sw, ok := c.FindSoftware("nes", "smbj")
	require.True(t, ok)
	part, ok := sw.FindPart("cart")
	require.True(t, ok)
	assert.Equal(t, "nes_cart", part.Interface)

	_, ok = c.FindSoftware("snes", "smb")
	assert.False(t, ok)
}

func TestParentLongName(t *testing.T) {
	c, err := Parse([]byte(testListsYAML))
	require.NoError(t, err)

	assert.Equal(t, "Super Mario Bros.", ParentLongName(c, "nes", "smb"))
	assert.Empty(t, ParentLongName(c, "nes", "zelda"))
	assert.Empty(t, ParentLongName(c, "snes", "smb"))
	assert.Empty(t, ParentLongName(c, "nes", ""))
	assert.Empty(t, ParentLongName(nil, "nes", "smb"))
}

func TestSupportStatusText(t *testing.T) {
	tests := []struct {
		text string
		want SupportStatus
	}{
		{"yes", Supported},
		{"", Supported},
		{"partial", PartiallySupported},
		{"NO", Unsupported},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var s SupportStatus
			require.NoError(t, s.UnmarshalText([]byte(tt.text)))
			assert.Equal(t, tt.want, s)
		})
	}

	var s SupportStatus
	assert.Error(t, s.UnmarshalText([]byte("maybe")))
	assert.False(t, SupportStatus(7).Valid())
	assert.Equal(t, "SupportStatus(7)", SupportStatus(7).String())
}

func TestLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()

	c, err := Load(fsys, "softlists.yaml")
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	require.NoError(t, afero.WriteFile(fsys, "softlists.yaml", []byte(testListsYAML), 0o644))
	c, err = Load(fsys, "softlists.yaml")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}
