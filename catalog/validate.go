package catalog

import (
	"errors"
	"fmt"
	"strings"

	"MoodFM/model"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidCatalog wraps every catalog validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

var structValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "M:SS" durations
	if err := v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		_, err := model.ParseDuration(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

func validate(moods []model.MoodCategory, songs []model.Song) error {
	if len(moods) == 0 {
		return fmt.Errorf("%w: no mood categories", ErrInvalidCatalog)
	}

	names := make(map[string]struct{}, len(moods))
	for i := range moods {
		if err := structValidator.Struct(&moods[i]); err != nil {
			return fmt.Errorf("%w: mood #%d: %s", ErrInvalidCatalog, i, describe(err))
		}
		if _, dup := names[moods[i].Name]; dup {
			return fmt.Errorf("%w: duplicate mood %q", ErrInvalidCatalog, moods[i].Name)
		}
		names[moods[i].Name] = struct{}{}
	}

	ids := make(map[int]struct{}, len(songs))
	for i := range songs {
		s := &songs[i]
		if err := structValidator.Struct(s); err != nil {
			return fmt.Errorf("%w: song #%d (id %d): %s", ErrInvalidCatalog, i, s.ID, describe(err))
		}
		if _, dup := ids[s.ID]; dup {
			return fmt.Errorf("%w: duplicate song id %d", ErrInvalidCatalog, s.ID)
		}
		ids[s.ID] = struct{}{}
		if _, ok := names[s.Mood]; !ok {
			return fmt.Errorf("%w: song %d references unknown mood %q", ErrInvalidCatalog, s.ID, s.Mood)
		}
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
