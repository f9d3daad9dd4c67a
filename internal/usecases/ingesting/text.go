package ingesting

import (
	"strings"

	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

// foldHeader normaliza cada célula do cabeçalho e junta espaços repetidos
func foldHeader(header []string) []string {
	folded := make([]string, len(header))
	for i, cell := range header {
		folded[i] = strings.Join(strings.Fields(utils.FoldText(cell)), " ")
	}
	return folded
}
