package mahjong

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

func kindNames(kinds []Kind) []any {
	names := make([]any, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

// ToStruct 转为 structpb.Struct, 牌以 "1m" 形式表示
func (r *HairiResult) ToStruct() (*structpb.Struct, error) {
	if r == nil {
		return structpb.NewStruct(map[string]any{"now": Agari})
	}
	fields := map[string]any{"now": r.Now}
	if r.Wait != nil {
		fields["wait"] = kindNames(r.Wait)
	}
	if r.WaitsAfterDiscard != nil {
		discards := make([]any, len(r.WaitsAfterDiscard))
		for i, dw := range r.WaitsAfterDiscard {
			discards[i] = map[string]any{
				"discard": dw.Discard.String(),
				"wait":    kindNames(dw.Wait),
			}
		}
		fields["waits_after_discard"] = discards
	}
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("encode hairi: %w", err)
	}
	return s, nil
}

// DecompositionsToList 拆解列表转为 structpb.ListValue
func DecompositionsToList(ds []Decomposition) (*structpb.ListValue, error) {
	items := make([]any, len(ds))
	for i, d := range ds {
		blocks := make([]any, len(d))
		for j, b := range d {
			blocks[j] = kindNames(b)
		}
		items[i] = blocks
	}
	l, err := structpb.NewList(items)
	if err != nil {
		return nil, fmt.Errorf("encode decompositions: %w", err)
	}
	return l, nil
}

// ToStruct 分和了形向听数
func (r ShantenResult) ToStruct() (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"standard":         r.Standard,
		"seven_pairs":      r.SevenPairs,
		"thirteen_orphans": r.ThirteenOrphans,
		"min":              r.Min,
		"shape":            r.Shape().String(),
	})
}
