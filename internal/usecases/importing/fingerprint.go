package importing

import (
	"crypto/sha256"
	"encoding/hex"
)

// fingerprintPrefixSize é o tamanho fixo do prefixo do arquivo usado como
// impressão digital de conteúdo. Um prefixo fixo mantém o hash estável e
// barato mesmo para arquivos de centenas de megabytes.
const fingerprintPrefixSize = 10 * 1024

// fingerprint calcula o hash de deduplicação sobre o prefixo bruto (ainda
// não decodificado) do arquivo. Duas submissões com o mesmo prefixo são a
// mesma importação lógica.
func fingerprint(prefix []byte) string {
	sum := sha256.Sum256(prefix)
	return hex.EncodeToString(sum[:])
}
