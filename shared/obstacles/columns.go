package obstacles

import "github.com/petar/GoLLRB/llrb"

// ColumnSet is the ordered set of tile columns that already received a
// spawn. Columns leave the set when one of their obstacles is culled.
type ColumnSet struct {
	tree *llrb.LLRB
}

func NewColumnSet() *ColumnSet {
	return &ColumnSet{tree: llrb.New()}
}

// Insert adds col and reports whether it was new.
func (s *ColumnSet) Insert(col int) bool {
	return s.tree.ReplaceOrInsert(llrb.Int(col)) == nil
}

// Remove deletes col and reports whether it was present.
func (s *ColumnSet) Remove(col int) bool {
	return s.tree.Delete(llrb.Int(col)) != nil
}

func (s *ColumnSet) Has(col int) bool {
	return s.tree.Has(llrb.Int(col))
}

func (s *ColumnSet) Len() int {
	return s.tree.Len()
}

// Columns returns the set in ascending order.
func (s *ColumnSet) Columns() []int {
	if s.tree.Len() == 0 {
		return nil
	}
	out := make([]int, 0, s.tree.Len())
	s.tree.AscendGreaterOrEqual(s.tree.Min(), func(i llrb.Item) bool {
		out = append(out, int(i.(llrb.Int)))
		return true
	})
	return out
}

func (s *ColumnSet) Clear() {
	s.tree = llrb.New()
}
