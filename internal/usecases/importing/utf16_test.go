package importing

import (
	"fmt"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
)

// encodeUTF16LE codifica uma string como o fluxo de bytes dos arquivos de
// exportação: UTF-16 little-endian, com ou sem BOM
func encodeUTF16LE(s string, withBOM bool) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, len(units)*2+2)
	if withBOM {
		out = append(out, bomByteLow, bomByteHigh)
	}
	for _, u := range units {
		out = append(out, byte(u), byte(u>>8))
	}
	return out
}

func TestUTF16Decoder_Decode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "Texto ASCII simples sem BOM",
			input:    encodeUTF16LE("Campaign\tAd Group", false),
			expected: "Campaign\tAd Group",
		},
		{
			name:     "BOM no início é removido",
			input:    encodeUTF16LE("Campaign", true),
			expected: "Campaign",
		},
		{
			name:     "BOM só é removido no início do fluxo",
			input:    encodeUTF16LE("a\ufeffb", true),
			expected: "a\ufeffb",
		},
		{
			name:     "Acentos e caracteres fora do ASCII",
			input:    encodeUTF16LE("Promoção de Verão — Tênis", false),
			expected: "Promoção de Verão — Tênis",
		},
		{
			name:     "Par de surrogates vira um único caractere",
			input:    encodeUTF16LE("venda 🎉 final", false),
			expected: "venda 🎉 final",
		},
		{
			name:     "Entrada vazia",
			input:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := &utf16Decoder{}
			got := dec.Decode(tt.input) + dec.Flush()
			assert.Equal(t, tt.expected, got)
		})
	}
}

// O resultado da decodificação não pode depender de onde o fluxo foi
// particionado em chunks: todo ponto de corte, inclusive no meio de um
// caractere ou de um par de surrogates, produz o mesmo texto.
func TestUTF16Decoder_IndependenteDasFronteirasDeChunk(t *testing.T) {
	content := "Verão 🎉\t–ação"
	encoded := encodeUTF16LE(content, true)

	for cut := 0; cut <= len(encoded); cut++ {
		t.Run(fmt.Sprintf("corte no byte %d", cut), func(t *testing.T) {
			dec := &utf16Decoder{}
			got := dec.Decode(encoded[:cut]) + dec.Decode(encoded[cut:]) + dec.Flush()
			assert.Equal(t, content, got)
		})
	}
}

func TestUTF16Decoder_ChunksDeUmByte(t *testing.T) {
	content := "ad 🎉"
	encoded := encodeUTF16LE(content, true)

	dec := &utf16Decoder{}
	var got string
	for _, b := range encoded {
		got += dec.Decode([]byte{b})
	}
	got += dec.Flush()

	assert.Equal(t, content, got)
}

func TestUTF16Decoder_ByteFinalMalformado(t *testing.T) {
	// Um byte solto no fim do fluxo é decodificado como está, sem erro
	encoded := append(encodeUTF16LE("ok", false), 'A')

	dec := &utf16Decoder{}
	got := dec.Decode(encoded) + dec.Flush()

	assert.Equal(t, "okA", got)
}
