package importing

import (
	"bytes"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAllLines(t *testing.T, reader *lineReader) []string {
	t.Helper()

	var lines []string
	for {
		line, ok, err := reader.Next()
		require.NoError(t, err)
		if !ok {
			return lines
		}
		lines = append(lines, line)
	}
}

func TestLineReader_Next(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "Linhas terminadas em LF",
			content:  "primeira\nsegunda\nterceira\n",
			expected: []string{"primeira", "segunda", "terceira"},
		},
		{
			name:     "CRLF conta como um único terminador",
			content:  "primeira\r\nsegunda\r\n",
			expected: []string{"primeira", "segunda"},
		},
		{
			name:     "Terminadores mistos no mesmo arquivo",
			content:  "a\r\nb\nc\r\n",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "Linhas vazias são puladas",
			content:  "a\n\n\r\nb\n",
			expected: []string{"a", "b"},
		},
		{
			name:     "Resto final sem terminador ainda é uma linha",
			content:  "a\nb",
			expected: []string{"a", "b"},
		},
		{
			name:     "Arquivo vazio",
			content:  "",
			expected: nil,
		},
		{
			name:     "Só terminadores",
			content:  "\n\r\n\n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := newLineReader(bytes.NewReader(encodeUTF16LE(tt.content, true)))
			assert.Equal(t, tt.expected, readAllLines(t, reader))
		})
	}
}

// As linhas lógicas não podem depender do tamanho das leituras da origem:
// um leitor que entrega um byte por vez produz o mesmo resultado.
func TestLineReader_LeiturasDeUmByte(t *testing.T) {
	content := "Campaign\tAd Group\nVerão 🎉\tTênis\r\núltima"
	encoded := encodeUTF16LE(content, true)

	reader := newLineReader(iotest.OneByteReader(bytes.NewReader(encoded)))

	assert.Equal(t, []string{
		"Campaign\tAd Group",
		"Verão 🎉\tTênis",
		"última",
	}, readAllLines(t, reader))
}

func TestLineReader_BytesRead(t *testing.T) {
	encoded := encodeUTF16LE("a\nb\nc\n", true)

	reader := newLineReader(bytes.NewReader(encoded))
	readAllLines(t, reader)

	assert.Equal(t, int64(len(encoded)), reader.BytesRead())
}

func TestLineReader_DepoisDoFimContinuaRetornandoFalso(t *testing.T) {
	reader := newLineReader(bytes.NewReader(encodeUTF16LE("única\n", false)))
	readAllLines(t, reader)

	for i := 0; i < 3; i++ {
		_, ok, err := reader.Next()
		require.NoError(t, err)
		assert.False(t, ok)
	}
}
