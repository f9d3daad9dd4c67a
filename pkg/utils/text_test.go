package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldText(t *testing.T) {
	assert.Equal(t, "situacao", FoldText(" Situação "))
	assert.Equal(t, "competencia", FoldText("Competência"))
	assert.Equal(t, "despesa nao operacional", FoldText("DESPESA NÃO OPERACIONAL"))
}
