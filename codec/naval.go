package codec

import (
	"github.com/tavernkeep/savecore/domain"
	"github.com/tavernkeep/savecore/saveconf"
)

// detectNavalExpansion reports whether the envelope's module list contains
// an id from cfg's closed naval-expansion identifier list; callers assign
// the result to Save.HasNavalExpansion.
func detectNavalExpansion(modules []domain.ModuleRef, cfg saveconf.Config) bool {
	moduleIDs := make([]string, len(modules))
	for i, m := range modules {
		moduleIDs[i] = m.Id
	}
	return cfg.HasNavalExpansion(moduleIDs)
}
