package export

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"questionbank/qbexport/pkg/flatten"
)

// DefaultEngine is the spreadsheet engine used when none is configured.
const DefaultEngine = "excelize"

// Sheet is a named set of records written as one worksheet.
type Sheet struct {
	Name    string
	Records []flatten.Record
}

// SheetEngine writes a workbook containing the given sheets, in order.
type SheetEngine interface {
	WriteWorkbook(ctx context.Context, sheets []Sheet, w io.Writer) error
}

var (
	enginesMu sync.RWMutex
	engines   = make(map[string]func() SheetEngine)
)

// RegisterEngine makes a spreadsheet engine available under name. Registering
// the same name twice replaces the earlier factory.
func RegisterEngine(name string, factory func() SheetEngine) {
	enginesMu.Lock()
	defer enginesMu.Unlock()
	engines[name] = factory
}

// Engines returns the registered engine names, sorted.
func Engines() []string {
	enginesMu.RLock()
	defer enginesMu.RUnlock()

	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupEngine returns the engine registered under name. An unknown name
// yields an error wrapping ErrMissingDependency.
func LookupEngine(name string) (SheetEngine, error) {
	if name == "" {
		name = DefaultEngine
	}

	enginesMu.RLock()
	factory, ok := engines[name]
	enginesMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: spreadsheet engine %q is not available (available: %s); rebuild qbexport with the engine linked in or set export.xlsx_engine",
			ErrMissingDependency, name, strings.Join(Engines(), ", "))
	}
	return factory(), nil
}
