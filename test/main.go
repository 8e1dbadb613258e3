package main

import (
	"fmt"

	"k8s.io/apimachinery/pkg/labels"

	"github.com/davemo/glide-data-grid/pkg/rowtable"
	"github.com/davemo/glide-data-grid/pkg/selection"
	"github.com/davemo/glide-data-grid/pkg/sparse"
)

func main() {
	s, err := selection.FromRanges([]selection.Range{
		{Start: 0, End: 3},
		{Start: 3, End: 5},
		{Start: 8, End: 10},
	})
	if err != nil {
		panic(err)
	}
	fmt.Println("selection", s, "length", s.Length())

	s = s.Remove(2)
	fmt.Println("after remove 2", s)

	iter := s.Iterate()
	for iter.Next() {
		fmt.Println("index", iter.Index())
	}

	tbl, err := rowtable.New(1024, map[int64]labels.Set{
		0: map[string]string{"kind": "header", "status": "reserved"},
	})
	if err != nil {
		panic(err)
	}
	for _, id := range []int64{1, 2, 3, 10} {
		if err := tbl.Mark(id, labels.Set{"marker": "checked"}); err != nil {
			panic(err)
		}
	}
	fmt.Println("marked rows", tbl.Selection())

	sel, err := labels.Parse("marker=checked")
	if err != nil {
		panic(err)
	}
	fmt.Println("checked rows", len(tbl.GetByLabel(sel)))

	big := sparse.New()
	for i := 0; i < 1000; i += 10 {
		if err := big.Add(selection.Range{Start: i, End: i + 5}); err != nil {
			panic(err)
		}
	}
	snap := big.Snapshot()
	big.Remove(0)
	fmt.Println("sparse length", big.Length(), "snapshot length", snap.Length())
}
