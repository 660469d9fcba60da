package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tubedash/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tubedash/internal/core/domain"
)

var januaryRange = domain.DateRange{Start: "2024-01-01", End: "2024-01-28"}

func newSavedReports(user string) *SavedReportService {
	session, _ := newSession(&stubAuthorizer{})
	session.SetCurrentUser(user)

	n := 0
	svc := NewSavedReportService(memory.NewSavedReportStore(), session, func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
	clock := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return svc
}

func TestSavedReportService_SaveAndList(t *testing.T) {
	svc := newSavedReports("a@example.com")
	ctx := context.Background()

	first, err := svc.Save(ctx, domain.ReportRevenue, "", januaryRange, nil)
	require.NoError(t, err)
	assert.Equal(t, "id-1", first.ID)
	assert.Equal(t, "a@example.com", first.Owner)
	assert.Equal(t, "revenue "+januaryRange.String(), first.Title)

	_, err = svc.Save(ctx, domain.ReportTop, "Top ten", januaryRange, map[string]string{"limit": "10"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Top ten", list[0].Title)
	assert.Equal(t, "id-1", list[1].ID)
}

func TestSavedReportService_Validation(t *testing.T) {
	svc := newSavedReports("a@example.com")
	ctx := context.Background()

	tests := []struct {
		name   string
		kind   domain.ReportKind
		r      domain.DateRange
		params map[string]string
	}{
		{"unknown kind", domain.ReportKind("bogus"), januaryRange, nil},
		{"bad range", domain.ReportGrowth, domain.DateRange{Start: "2024-13-01", End: "2024-01-01"}, nil},
		{"video without id", domain.ReportVideo, januaryRange, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(ctx, tt.kind, "", tt.r, tt.params)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSavedReportService_FormatsIgnoresRange(t *testing.T) {
	svc := newSavedReports("a@example.com")

	_, err := svc.Save(context.Background(), domain.ReportFormats, "Formats", domain.DateRange{}, nil)
	assert.NoError(t, err)
}

func TestSavedReportService_NotSignedIn(t *testing.T) {
	svc := newSavedReports("")
	ctx := context.Background()

	_, err := svc.Save(ctx, domain.ReportRevenue, "", januaryRange, nil)
	assert.ErrorIs(t, err, domain.ErrNotSignedIn)
	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, domain.ErrNotSignedIn)
	assert.ErrorIs(t, svc.Delete(ctx, "x"), domain.ErrNotSignedIn)
	_, err = svc.Watch(ctx)
	assert.ErrorIs(t, err, domain.ErrNotSignedIn)
}

func TestSavedReportService_Delete(t *testing.T) {
	svc := newSavedReports("a@example.com")
	ctx := context.Background()
	saved, err := svc.Save(ctx, domain.ReportRevenue, "", januaryRange, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, ""), domain.ErrInvalidInput)
	require.NoError(t, svc.Delete(ctx, saved.ID))
	assert.ErrorIs(t, svc.Delete(ctx, saved.ID), domain.ErrNotFound)
}

func TestSavedReportService_Watch(t *testing.T) {
	svc := newSavedReports("a@example.com")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := svc.Watch(ctx)
	require.NoError(t, err)
	assert.Empty(t, <-updates)

	_, err = svc.Save(context.Background(), domain.ReportGrowth, "", januaryRange, nil)
	require.NoError(t, err)
	assert.Len(t, <-updates, 1)
}

func TestSavedReportService_NilStore(t *testing.T) {
	session, _ := newSession(&stubAuthorizer{})
	session.SetCurrentUser("a@example.com")
	svc := NewSavedReportService(nil, session, func() string { return "x" })

	_, err := svc.List(context.Background())
	assert.Error(t, err)
}
