package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListResources(t *testing.T) {
	rs := ListResources()
	require.Len(t, rs, 4)
	for _, r := range rs {
		assert.True(t, strings.HasPrefix(r.URI, "fraud://"), r.URI)
		assert.Equal(t, "text/markdown", r.MimeType)
		assert.NotEmpty(t, r.Name)
	}
}

func TestReadResource(t *testing.T) {
	for _, r := range ListResources() {
		content, err := ReadResource(r.URI)
		require.NoError(t, err, r.URI)
		assert.NotEmpty(t, content)
	}

	_, err := ReadResource("fraud://nope")
	assert.Error(t, err)
}

func TestListPrompts(t *testing.T) {
	ps := ListPrompts()
	require.Len(t, ps, 2)
	assert.Equal(t, "investigate_dealer", ps[0].Name)
	assert.True(t, ps[0].Arguments[0].Required)
}

func TestRenderPromptInvestigate(t *testing.T) {
	out, err := RenderPrompt("investigate_dealer", map[string]string{
		"cnpj":         "11.222.333/0001-81",
		"company_name": "Auto ABC",
		"concern":      "venda de veículo com chassi adulterado",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "11.222.333/0001-81")
	assert.Contains(t, out, "Auto ABC")
	assert.Contains(t, out, "chassi adulterado")
}

func TestRenderPromptDefaults(t *testing.T) {
	out, err := RenderPrompt("investigate_dealer", map[string]string{"cnpj": "11.222.333/0001-81"})
	require.NoError(t, err)
	assert.Contains(t, out, "possível fraude")
	assert.Contains(t, out, "A investigar")
}

func TestRenderPromptPrePurchase(t *testing.T) {
	out, err := RenderPrompt("pre_purchase_check", map[string]string{
		"cnpj":         "11.222.333/0001-81",
		"vehicle_info": "Civic 2019",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Civic 2019")

	_, err = RenderPrompt("unknown", nil)
	assert.Error(t, err)
}
