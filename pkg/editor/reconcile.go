package editor

import "github.com/goliatone/go-paramedit/pkg/model"

// Reconcile derives the value map for params. For each parameter the previous
// value wins, then the model's value, then the empty string. Ids absent from
// params are dropped and model entries for unknown ids never create entries.
// None of the inputs are mutated.
func Reconcile(params []model.Param, m model.Model, previous map[int]string) map[int]string {
	fromModel := m.Index()
	next := make(map[int]string, len(params))
	for _, p := range params {
		if value, ok := previous[p.ID]; ok {
			next[p.ID] = value
			continue
		}
		next[p.ID] = fromModel[p.ID]
	}
	return next
}

// staleIDs lists model entries that reference no current parameter.
func staleIDs(params []model.Param, m model.Model) []int {
	if len(m.ParamValues) == 0 {
		return nil
	}
	known := make(map[int]struct{}, len(params))
	for _, p := range params {
		known[p.ID] = struct{}{}
	}
	var out []int
	for _, pv := range m.ParamValues {
		if _, ok := known[pv.ParamID]; !ok {
			out = append(out, pv.ParamID)
		}
	}
	return out
}
