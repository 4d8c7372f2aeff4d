package importing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHeaderMapping(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		wantErr  string
		validate func(t *testing.T, m *headerMapping)
	}{
		{
			name:    "Cabeçalho mínimo com as colunas obrigatórias",
			headers: []string{"Campaign", "Ad Group", "Keyword"},
			validate: func(t *testing.T, m *headerMapping) {
				assert.Equal(t, 0, m.cols[fieldCampaign])
				assert.Equal(t, 1, m.cols[fieldAdGroup])
				assert.Equal(t, 2, m.cols[fieldKeyword])
			},
		},
		{
			name:    "Comparação insensível a maiúsculas e espaços",
			headers: []string{"  CAMPAIGN ", "ad group", "KeyWord"},
			validate: func(t *testing.T, m *headerMapping) {
				assert.Equal(t, 0, m.cols[fieldCampaign])
				assert.Equal(t, 1, m.cols[fieldAdGroup])
				assert.Equal(t, 2, m.cols[fieldKeyword])
			},
		},
		{
			name:    "Variante com marcador espúrio na primeira célula",
			headers: []string{"\ufeffAccount", "Campaign", "Ad Group", "Keyword"},
			validate: func(t *testing.T, m *headerMapping) {
				assert.Equal(t, 0, m.cols[fieldAccount])
			},
		},
		{
			name:    "Criterion Type resolve para o tipo de correspondência",
			headers: []string{"Campaign", "Ad Group", "Keyword", "Criterion Type"},
			validate: func(t *testing.T, m *headerMapping) {
				assert.Equal(t, 3, m.cols[fieldMatchType])
			},
		},
		{
			name:    "Colunas desconhecidas são ignoradas",
			headers: []string{"Campaign", "Ad Group", "Keyword", "Coluna Inventada", "Outra"},
			validate: func(t *testing.T, m *headerMapping) {
				assert.Len(t, m.cols, 3)
			},
		},
		{
			name: "Títulos e descrições numerados viram listas ordenadas",
			headers: []string{
				"Campaign", "Ad Group", "Keyword",
				"Headline 3", "Headline 1", "Description 2", "Description 1",
			},
			validate: func(t *testing.T, m *headerMapping) {
				// A ordem segue a numeração lógica, não a posição da coluna
				assert.Equal(t, []int{4, 3}, m.headlines)
				assert.Equal(t, []int{6, 5}, m.descriptions)
			},
		},
		{
			name:    "Coluna de campanha ausente é erro estrutural",
			headers: []string{"Ad Group", "Keyword", "Status"},
			wantErr: "coluna obrigatória",
		},
		{
			name:    "Coluna de keyword ausente é erro estrutural",
			headers: []string{"Campaign", "Ad Group", "Status"},
			wantErr: "coluna obrigatória",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := newHeaderMapping(tt.headers)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.validate(t, m)
		})
	}
}

func TestHeaderMapping_Value(t *testing.T) {
	m, err := newHeaderMapping([]string{"Campaign", "Ad Group", "Keyword", "Budget"})
	require.NoError(t, err)

	cols := strings.Split("Summer Sale\tShoes", "\t")

	assert.Equal(t, "Summer Sale", m.value(cols, fieldCampaign))
	assert.Equal(t, "Shoes", m.value(cols, fieldAdGroup))

	// Linha mais curta que o cabeçalho: valor ausente, nunca pânico
	assert.Equal(t, "", m.value(cols, fieldBudget))

	// Chave sem coluna correspondente no arquivo
	assert.Equal(t, "", m.value(cols, fieldTargetCPA))
}

func TestCollect(t *testing.T) {
	cols := []string{"Summer Sale", "Shoes", "", "Tênis de corrida", "  ", "Frete grátis"}

	assert.Equal(t, []string{"Tênis de corrida", "Frete grátis"}, collect(cols, []int{3, 4, 5}))
	assert.Empty(t, collect(cols, []int{2, 4}))
	assert.Empty(t, collect(cols, []int{10, 11}))
}
