package mock

import (
	"context"

	"github.com/julisunkan/maka/internal/port"
)

// HTTPRenderer implements port.HTTPRenderer for tests.
type HTTPRenderer struct {
	Data []byte
	Etag string
	Err  error

	Called   bool
	Getter   port.MetadataGetter
	Filename string
}

func (m *HTTPRenderer) RenderGetMetadata(ctx context.Context, getter port.MetadataGetter, filename string) ([]byte, string, error) {
	m.Called = true
	m.Getter = getter
	m.Filename = filename
	return m.Data, m.Etag, m.Err
}
