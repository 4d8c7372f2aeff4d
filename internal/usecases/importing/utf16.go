package importing

import (
	"unicode/utf16"
)

// utf16Decoder converte um fluxo de bytes UTF-16 little-endian em texto,
// chunk a chunk, sem corromper caracteres nas fronteiras entre chunks.
// O estado é explícito: byte ímpar carregado para o próximo chunk, surrogate
// alto aguardando o par e BOM já consumido ou não.
type utf16Decoder struct {
	carry          byte
	hasCarry       bool
	pendingHigh    uint16
	hasPendingHigh bool
	bomChecked     bool
}

const (
	bomByteLow  = 0xFF
	bomByteHigh = 0xFE
)

// Decode decodifica um chunk do fluxo. Pode devolver string vazia quando o
// chunk inteiro ficou retido no estado interno (ex.: um único byte).
func (d *utf16Decoder) Decode(chunk []byte) string {
	if len(chunk) == 0 {
		return ""
	}

	data := chunk
	if d.hasCarry {
		joined := make([]byte, 0, len(chunk)+1)
		joined = append(joined, d.carry)
		joined = append(joined, chunk...)
		data = joined
		d.hasCarry = false
	}

	if !d.bomChecked {
		if len(data) < 2 {
			// Ainda não há bytes suficientes para decidir sobre o BOM
			d.carry = data[0]
			d.hasCarry = true
			return ""
		}

		d.bomChecked = true
		if data[0] == bomByteLow && data[1] == bomByteHigh {
			data = data[2:]
		}
	}

	// Caracteres têm 2 bytes: um byte ímpar no fim do chunk é guardado
	// e reanexado ao próximo chunk antes da decodificação
	if len(data)%2 == 1 {
		d.carry = data[len(data)-1]
		d.hasCarry = true
		data = data[:len(data)-1]
	}

	return d.decodeUnits(data, false)
}

// Flush decodifica qualquer resto retido ao fim do fluxo. Um byte final
// malformado é decodificado como está, nunca vira erro.
func (d *utf16Decoder) Flush() string {
	out := d.decodeUnits(nil, true)

	if d.hasCarry {
		d.hasCarry = false
		out += string(rune(d.carry))
	}

	return out
}

func (d *utf16Decoder) decodeUnits(data []byte, flush bool) string {
	units := make([]uint16, 0, len(data)/2+1)
	if d.hasPendingHigh {
		units = append(units, d.pendingHigh)
		d.hasPendingHigh = false
	}

	for i := 0; i+1 < len(data); i += 2 {
		units = append(units, uint16(data[i])|uint16(data[i+1])<<8)
	}

	// Um surrogate alto no fim do chunk espera o par no próximo chunk
	if !flush && len(units) > 0 {
		if last := units[len(units)-1]; isHighSurrogate(last) {
			d.pendingHigh = last
			d.hasPendingHigh = true
			units = units[:len(units)-1]
		}
	}

	if len(units) == 0 {
		return ""
	}

	return string(utf16.Decode(units))
}

func isHighSurrogate(u uint16) bool {
	return u >= 0xD800 && u <= 0xDBFF
}
