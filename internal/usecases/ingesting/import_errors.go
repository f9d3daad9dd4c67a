package ingesting

import (
	"errors"
	"fmt"
)

// Erros específicos da importação de planilhas
var (
	// Erros de arquivo
	ErrUnsupportedFormat = errors.New("formato de arquivo não suportado, use .xlsx ou .xls")
	ErrEmptyWorkbook     = errors.New("arquivo deve conter pelo menos um cabeçalho e uma linha de dados")
	ErrCorruptWorkbook   = errors.New("não foi possível ler o arquivo")
	ErrFileTooLarge      = errors.New("arquivo excede o tamanho máximo permitido")
	ErrUnrecognizedSheet = errors.New("formato de arquivo não reconhecido")
	ErrDuplicateFile     = errors.New("arquivo já importado")

	// Erros de histórico
	ErrBatchIDRequired = errors.New("id da importação é obrigatório")
	ErrBatchNotFound   = errors.New("importação não encontrada")

	// Erros de banco de dados
	ErrPersistRecords = errors.New("erro ao gravar registros importados")
	ErrDeleteBatch    = errors.New("erro ao excluir importação")
	ErrListBatches    = errors.New("erro ao listar importações")
)

// ImportError é um erro com contexto adicional de um arquivo importado
type ImportError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	FileName string // Arquivo envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError cria um novo ImportError
func NewImportError(err error, code string, details string) *ImportError {
	return &ImportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewFileImportError cria um novo ImportError com o nome do arquivo
func NewFileImportError(err error, code string, fileName string, details string) *ImportError {
	return &ImportError{
		Err:      err,
		Code:     code,
		FileName: fileName,
		Details:  details,
	}
}
