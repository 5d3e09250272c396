package sawyer

import (
	"os"
	"strings"

	"github.com/sawyer-cli/sawyer/cursor"
	"github.com/sawyer-cli/sawyer/internal/inctoken"
	"github.com/sawyer-cli/sawyer/sawyererr"
)

// tryInclude checks whether the cursor's current argument names an included
// arguments file (one of p.IncludePrefixes followed by a path) and, if so,
// splices its tokenized contents in place of that single argument.
func (p *Parser) tryInclude(cur *cursor.Cursor) (bool, error) {
	if len(p.IncludePrefixes) == 0 {
		return false, nil
	}
	tok, err := cur.CurrentArg()
	if err != nil {
		return false, nil
	}
	for _, prefix := range p.IncludePrefixes {
		if !strings.HasPrefix(tok, prefix) {
			continue
		}
		path := tok[len(prefix):]
		if path == "" {
			continue
		}
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return false, sawyererr.At(sawyererr.KindInclusion, cur.Location(), tok,
				"cannot read included arguments file %s: %v", path, rerr)
		}
		toks, terr := inctoken.Tokenize(string(data))
		if terr != nil {
			return false, sawyererr.At(sawyererr.KindInclusion, cur.Location(), tok,
				"cannot tokenize included arguments file %s: %v", path, terr)
		}
		if err := cur.Replace(toks); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
