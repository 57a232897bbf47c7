package application_test

import (
	"context"

	"github.com/aufield/sitesheet/internal/domain/capture"
	"github.com/aufield/sitesheet/internal/domain/inspection"
)

type MockRepo struct {
	Draft     *inspection.Draft
	SaveError error
	LoadError error
	Saves     int
}

func (m *MockRepo) Save(ctx context.Context, d *inspection.Draft) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Draft = d.Clone()
	m.Saves++
	return nil
}

func (m *MockRepo) Load(ctx context.Context) (*inspection.Draft, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	if m.Draft == nil {
		return nil, inspection.ErrNoDraft
	}
	return m.Draft.Clone(), nil
}

func (m *MockRepo) Delete(ctx context.Context) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Draft = nil
	return nil
}

type MockCamera struct {
	Granted     bool
	PermErr     error
	Shot        capture.Shot
	CaptureErr  error
	Invocations int
	GotOpts     capture.Options
}

func (m *MockCamera) RequestPermission(ctx context.Context) (bool, error) {
	return m.Granted, m.PermErr
}

func (m *MockCamera) Capture(ctx context.Context, opts capture.Options) (capture.Shot, error) {
	m.Invocations++
	m.GotOpts = opts
	return m.Shot, m.CaptureErr
}
