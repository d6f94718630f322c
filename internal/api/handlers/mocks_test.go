package handlers

import (
	"context"
	"io"

	"github.com/RMahshie/filterform/pkg/models"
	"github.com/stretchr/testify/mock"
)

const renderedIndex = `<form action="/calculate" method="post"></form>`

// MockDesignService implements processing.DesignService for testing
type MockDesignService struct {
	mock.Mock
}

func (m *MockDesignService) Submit(ctx context.Context, params models.FilterParameters) (*models.DesignSubmission, error) {
	args := m.Called(ctx, params)
	submission, _ := args.Get(0).(*models.DesignSubmission)
	return submission, args.Error(1)
}

// MockPageRenderer implements PageRenderer for testing
type MockPageRenderer struct {
	mock.Mock
}

func (m *MockPageRenderer) Render(w io.Writer, name string) error {
	args := m.Called(w, name)
	if err := args.Error(0); err != nil {
		return err
	}
	_, err := io.WriteString(w, renderedIndex)
	return err
}
