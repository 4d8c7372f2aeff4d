package importing

import (
	"io"
	"strings"
)

const readChunkSize = 64 * 1024

// lineReader produz uma sequência preguiçosa de linhas lógicas a partir de um
// fluxo de bytes UTF-16LE. Nunca materializa mais do que uma linha além do
// buffer de leitura, independente do tamanho total do arquivo.
// Linhas vazias são puladas; LF e CRLF contam como um único terminador.
type lineReader struct {
	r         io.Reader
	dec       *utf16Decoder
	buf       []byte
	pending   strings.Builder
	queue     []string
	eof       bool
	bytesRead int64
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{
		r:   r,
		dec: &utf16Decoder{},
		buf: make([]byte, readChunkSize),
	}
}

// Next devolve a próxima linha lógica não vazia. O segundo retorno é falso
// quando o fluxo terminou.
func (l *lineReader) Next() (string, bool, error) {
	for {
		if len(l.queue) > 0 {
			line := l.queue[0]
			l.queue = l.queue[1:]
			return line, true, nil
		}

		if l.eof {
			return "", false, nil
		}

		if err := l.fill(); err != nil {
			return "", false, err
		}
	}
}

// BytesRead devolve o total de bytes brutos já consumidos da origem,
// usado para estimar o progresso da importação.
func (l *lineReader) BytesRead() int64 {
	return l.bytesRead
}

func (l *lineReader) fill() error {
	n, err := l.r.Read(l.buf)
	if n > 0 {
		l.bytesRead += int64(n)
		l.split(l.dec.Decode(l.buf[:n]))
	}

	if err == io.EOF {
		l.eof = true
		l.split(l.dec.Flush())

		// O resto final sem terminador ainda é uma linha lógica
		if l.pending.Len() > 0 {
			l.enqueue(l.pending.String())
			l.pending.Reset()
		}
		return nil
	}

	return err
}

func (l *lineReader) split(text string) {
	if text == "" {
		return
	}

	for {
		idx := strings.IndexByte(text, '\n')
		if idx < 0 {
			l.pending.WriteString(text)
			return
		}

		l.pending.WriteString(text[:idx])
		l.enqueue(l.pending.String())
		l.pending.Reset()
		text = text[idx+1:]
	}
}

func (l *lineReader) enqueue(line string) {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return
	}

	l.queue = append(l.queue, line)
}
