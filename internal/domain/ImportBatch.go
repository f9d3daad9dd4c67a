package domain

import "time"

// BatchStatus é o resultado da importação de um arquivo
type BatchStatus string

const (
	BatchStatusSuccess BatchStatus = "success"
	BatchStatusError   BatchStatus = "error"
)

// ImportBatch representa um arquivo enviado, com seu tipo e quantidade de registros
type ImportBatch struct {
	ID           string      `json:"id"`
	FileName     string      `json:"fileName"`
	Kind         RecordKind  `json:"recordKind"`
	KindLabel    string      `json:"kindLabel"`
	SizeLabel    string      `json:"sizeLabel"`
	Checksum     string      `json:"checksum,omitempty"`
	ImportedOn   time.Time   `json:"importedOn"`
	Status       BatchStatus `json:"status"`
	RecordCount  int         `json:"recordCount"`
	ErrorMessage *string     `json:"errorMessage,omitempty"`
}

// ImportStats alimenta os cartões da tela de importação
type ImportStats struct {
	Successful   int `json:"successful"`
	Failed       int `json:"failed"`
	TotalRecords int `json:"totalRecords"`
}

// ImportResult é a resposta por arquivo de um upload
type ImportResult struct {
	Batch ImportBatch `json:"batch"`
	Error string      `json:"error,omitempty"`
}
