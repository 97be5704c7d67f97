package pagination

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// MaxPageSize is the largest page size a Request accepts.
const MaxPageSize = 100

// Pageable is what a Page needs to know about the request it answers.
// Offset is expected to equal Page()*PageSize(); Of does not check it.
type Pageable interface {
	Page() int
	PageSize() int
	Offset() int
}

// Request is the default Pageable: a zero-based page index and a page size.
type Request struct {
	page     int
	pageSize int
}

var validate = validator.New()

// NewRequest validates page >= 0 and 1 <= pageSize <= MaxPageSize.
// Every violated field is reported; the joined error matches ErrInvalidArgument.
func NewRequest(page, pageSize int) (Request, error) {
	var errs []error
	if err := validate.Var(page, "min=0"); err != nil {
		errs = append(errs, fieldError("page", err))
	}
	if err := validate.Var(pageSize, "min=1,max="+strconv.Itoa(MaxPageSize)); err != nil {
		errs = append(errs, fieldError("pageSize", err))
	}
	if len(errs) > 0 {
		return Request{}, errors.Join(errs...)
	}
	return Request{page: page, pageSize: pageSize}, nil
}

func (r Request) Page() int     { return r.page }
func (r Request) PageSize() int { return r.pageSize }
func (r Request) Offset() int   { return r.page * r.pageSize }

// Defaults bounds raw, possibly user supplied, page parameters.
type Defaults struct {
	PageSize    int
	MaxPageSize int
}

// NormalizeRequest clamps raw input the way list endpoints treat query
// parameters (negative page to 0, missing size to the default, oversize to the
// max) and then validates the result.
func NormalizeRequest(page, pageSize int, d Defaults) (Request, error) {
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = d.PageSize
	}
	if d.MaxPageSize > 0 && pageSize > d.MaxPageSize {
		pageSize = d.MaxPageSize
	}
	return NewRequest(page, pageSize)
}

func fieldError(field string, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return invalidArgument(field, "must satisfy "+fe.Tag()+"="+fe.Param(), err)
	}
	return invalidArgument(field, "", err)
}

var _ Pageable = Request{}
