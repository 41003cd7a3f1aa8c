package export

import (
	"fmt"

	"github.com/talentohr/hris-backend-go/internal/domain/report"
)

// Filename builds "<agency>_<code>_<period>.<ext>", e.g.
// bir_1601c_2024-05.xlsx or sss_ecl_2024-05.txt.
func Filename(def report.Definition, format report.Format, slug string) string {
	return fmt.Sprintf("%s_%s_%s.%s", def.Agency, def.Code, slug, format.Extension())
}
