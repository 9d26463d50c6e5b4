package update

import "github.com/sandeepkv93/todoboard/internal/model"

func categoryLabels(in []model.Category) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		out = append(out, string(c))
	}
	return out
}
