package response

import (
	"log/slog"

	"github.com/jinzhu/copier"
)

// copyTo copies same-named fields from a read model into a fresh response.
func copyTo[T any](src any) *T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		slog.Error("failed to map response", "error", err.Error())
	}
	return &dst
}

func copyEach[T any, S any](src []S) []*T {
	out := make([]*T, 0, len(src))
	for _, s := range src {
		out = append(out, copyTo[T](s))
	}
	return out
}
