package align

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/yumyai/netalign/pkg/model"
)

// Pair is one retained line of the alignment mapping, fields in file order.
type Pair struct {
	S1 string
	S2 string
}

// ScanPairs walks the alignment mapping in file order and keeps a line only
// when both of its genes are subnetwork members not yet used by an earlier
// kept line. Reading stops once every member has been used.
func ScanPairs(r io.Reader, members map[string]model.Species) ([]Pair, error) {
	remaining := make(map[string]struct{}, len(members))
	for gene := range members {
		remaining[gene] = struct{}{}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var pairs []Pair
	for len(remaining) > 0 && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			continue
		}
		a, b := strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])
		if a == b {
			continue
		}
		_, okA := remaining[a]
		_, okB := remaining[b]
		if !okA || !okB {
			continue
		}
		delete(remaining, a)
		delete(remaining, b)
		pairs = append(pairs, Pair{S1: a, S2: b})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("alignment file: %w", err)
	}
	return pairs, nil
}
