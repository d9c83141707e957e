package storage

import "context"

// Store é o armazenamento chave-valor de coleções nomeadas.
// Cada coleção guarda o conjunto inteiro de registros serializado —
// leitura-modificação-gravação da coleção completa, sem escrita parcial.
type Store interface {
	// Load devolve o conteúdo da coleção, ou nil quando ela não existe.
	Load(ctx context.Context, collection string) ([]byte, error)

	// Save sobrescreve o conteúdo da coleção por completo.
	Save(ctx context.Context, collection string, data []byte) error
}
