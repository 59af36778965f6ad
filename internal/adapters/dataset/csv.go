package dataset

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"

	"review_analyzer/internal/domain"
)

// Load reads the seed dataset from path. A missing file is not fatal: the
// service starts with an empty store.
func Load(path string) ([]domain.Review, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("path", path).Msg("dataset file missing; starting empty")
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read decodes CSV rows (header: ReviewId,Location,ReviewBody,Timestamp)
// in file order.
func Read(r io.Reader) ([]domain.Review, error) {
	var rows []domain.Review
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
