package fingerprint

import (
	"bufio"
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"attest/internal/faults"
	"attest/internal/fileutil"
	"attest/internal/logging"
)

// BaselineFileName is the conventional name of the recorded fingerprint file
// at a project root.
const BaselineFileName = "hashes.txt"

// entrySeparator is the two-space separator used by common checksum tools.
const entrySeparator = "  "

// Store reads and writes fingerprint sets in the baseline text format. The
// zero value uses SHA256 and no logging.
type Store struct {
	// Algorithm determines the digest length Load accepts.
	Algorithm Algorithm
	// Logger receives load/save notes at debug level. Nil disables output.
	Logger *slog.Logger
}

// Load parses the baseline file at path. Each line holds one entry:
// "<hex-digest>  <relative-path>". Malformed lines (bad separator, wrong
// digest length, non-hex digest) produce a ParseError naming the line.
func (st Store) Load(path string) (*Set, error) {
	algo := st.algorithm()

	file, err := os.Open(path)
	if err != nil {
		return nil, faults.Wrap(faults.ErrIO, "baseline", "open", path, err)
	}
	defer file.Close()

	set := NewSet()
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		digest, rel, found := strings.Cut(line, entrySeparator)
		if !found {
			return nil, faults.Wrap(faults.ErrParse, "baseline", "parse",
				fmt.Sprintf("%s line %d: missing separator", path, lineNo), nil)
		}
		if len(digest) != algo.HexLen() {
			return nil, faults.Wrap(faults.ErrParse, "baseline", "parse",
				fmt.Sprintf("%s line %d: digest length %d, expected %d for %s", path, lineNo, len(digest), algo.HexLen(), algo), nil)
		}
		if !isLowerHex(digest) {
			return nil, faults.Wrap(faults.ErrParse, "baseline", "parse",
				fmt.Sprintf("%s line %d: digest is not lowercase hex", path, lineNo), nil)
		}
		if strings.TrimSpace(rel) == "" {
			return nil, faults.Wrap(faults.ErrParse, "baseline", "parse",
				fmt.Sprintf("%s line %d: empty path", path, lineNo), nil)
		}
		set.Add(rel, digest)
	}
	if err := scanner.Err(); err != nil {
		return nil, faults.Wrap(faults.ErrIO, "baseline", "read", path, err)
	}

	logging.OrNop(st.Logger).Debug("baseline loaded", slog.String("path", path), slog.Int("entries", set.Len()))
	return set, nil
}

// Save writes set to path in lexicographic path order, replacing the
// destination atomically so a failed write never leaves a partial file.
func (st Store) Save(path string, set *Set) error {
	var buf bytes.Buffer
	for _, entry := range set.Entries() {
		buf.WriteString(entry.Digest)
		buf.WriteString(entrySeparator)
		buf.WriteString(entry.Path)
		buf.WriteByte('\n')
	}

	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return faults.Wrap(faults.ErrIO, "baseline", "save", path, err)
	}

	logging.OrNop(st.Logger).Debug("baseline saved", slog.String("path", path), slog.Int("entries", set.Len()))
	return nil
}

func (st Store) algorithm() Algorithm {
	if st.Algorithm == "" {
		return SHA256
	}
	return st.Algorithm
}

func isLowerHex(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
