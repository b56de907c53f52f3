package sessionrepo

import (
	"context"
	"slices"

	"shift/internal/core/domain/model/driver"
	"shift/internal/pkg/errs"
)

// Table is the keyed storage a Repository reads and writes. Rows are keyed
// by driver name.
type Table interface {
	Load(name string) (SessionDTO, bool)
	Names() []string
	Save(dto SessionDTO) error
}

type Repository struct {
	table Table
}

func NewRepository(table Table) *Repository {
	return &Repository{table: table}
}

func (r *Repository) Add(ctx context.Context, session *driver.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := session.Validate(); err != nil {
		return err
	}

	if _, ok := r.table.Load(session.Name()); ok {
		return errs.NewObjectAlreadyExistsError("driver", session.Name())
	}

	return r.table.Save(fromDomain(session))
}

func (r *Repository) Update(ctx context.Context, session *driver.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := session.Validate(); err != nil {
		return err
	}

	stored, ok := r.table.Load(session.Name())
	if !ok {
		return errs.NewObjectNotFoundError("driver", session.Name())
	}
	if stored.ID != session.ID().Bytes() {
		return errs.NewObjectAlreadyExistsErrorWithCause("driver", session.Name(),
			errs.NewValueIsInvalidError("session id does not match the stored driver"))
	}

	return r.table.Save(fromDomain(session))
}

func (r *Repository) GetByName(ctx context.Context, name string) (*driver.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dto, ok := r.table.Load(name)
	if !ok {
		return nil, errs.NewObjectNotFoundError("driver", name)
	}

	return toDomain(dto)
}

// GetAll returns the sessions ordered by name.
func (r *Repository) GetAll(ctx context.Context) ([]*driver.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names := r.table.Names()
	slices.Sort(names)

	sessions := make([]*driver.Session, 0, len(names))
	for _, name := range names {
		dto, ok := r.table.Load(name)
		if !ok {
			continue
		}

		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}
