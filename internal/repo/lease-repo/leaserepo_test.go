package leaserepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Acquire(t *testing.T) {
	repo, mockDB := NewMock(t)
	ctx := context.Background()
	staleBefore := time.Now().Add(-time.Minute)

	query := regexp.QuoteMeta(`
        INSERT INTO monitor_leases (deployment_id, owner, heartbeat_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (deployment_id) DO UPDATE
        SET owner = EXCLUDED.owner, heartbeat_at = NOW()
        WHERE monitor_leases.owner = EXCLUDED.owner OR monitor_leases.heartbeat_at < $3
    `)

	tests := []struct {
		name        string
		prepareMock func()
		wantOwned   bool
		wantErr     bool
	}{
		{
			name: "Lease acquired",
			prepareMock: func() {
				mockDB.ExpectExec(query).
					WithArgs(7, "monitor-a", staleBefore).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			wantOwned: true,
		},
		{
			name: "Held by live owner",
			prepareMock: func() {
				mockDB.ExpectExec(query).
					WithArgs(7, "monitor-a", staleBefore).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			wantOwned: false,
		},
		{
			name: "Exec fails",
			prepareMock: func() {
				mockDB.ExpectExec(query).
					WithArgs(7, "monitor-a", staleBefore).
					WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			owned, err := repo.Acquire(ctx, 7, "monitor-a", staleBefore)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantOwned, owned)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestRepository_Heartbeat(t *testing.T) {
	repo, mockDB := NewMock(t)
	ctx := context.Background()

	query := regexp.QuoteMeta(`UPDATE monitor_leases SET heartbeat_at = NOW() WHERE deployment_id = $1 AND owner = $2`)

	tests := []struct {
		name        string
		prepareMock func()
		wantErr     bool
	}{
		{
			name: "Heartbeat recorded",
			prepareMock: func() {
				mockDB.ExpectExec(query).
					WithArgs(7, "monitor-a").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Exec fails",
			prepareMock: func() {
				mockDB.ExpectExec(query).
					WithArgs(7, "monitor-a").
					WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := repo.Heartbeat(ctx, 7, "monitor-a")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestRepository_Release(t *testing.T) {
	repo, mockDB := NewMock(t)
	ctx := context.Background()

	query := regexp.QuoteMeta(`DELETE FROM monitor_leases WHERE deployment_id = $1 AND owner = $2`)

	mockDB.ExpectExec(query).
		WithArgs(7, "monitor-a").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Release(ctx, 7, "monitor-a")
	assert.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestRepository_OrphanedDeployments(t *testing.T) {
	repo, mockDB := NewMock(t)
	ctx := context.Background()
	staleBefore := time.Now().Add(-time.Minute)

	query := regexp.QuoteMeta(`SELECT d.id FROM deployments d LEFT JOIN monitor_leases l ON l.deployment_id = d.id WHERE d.status = 'running' AND (l.deployment_id IS NULL OR l.heartbeat_at < $1) ORDER BY d.id`)

	tests := []struct {
		name        string
		prepareMock func()
		wantIDs     []int
		wantErr     bool
	}{
		{
			name: "Orphans found",
			prepareMock: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(3).AddRow(9)
				mockDB.ExpectQuery(query).WithArgs(staleBefore).WillReturnRows(rows)
			},
			wantIDs: []int{3, 9},
		},
		{
			name: "No orphans",
			prepareMock: func() {
				rows := pgxmock.NewRows([]string{"id"})
				mockDB.ExpectQuery(query).WithArgs(staleBefore).WillReturnRows(rows)
			},
			wantIDs: nil,
		},
		{
			name: "Query fails",
			prepareMock: func() {
				mockDB.ExpectQuery(query).WithArgs(staleBefore).WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			ids, err := repo.OrphanedDeployments(ctx, staleBefore)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantIDs, ids)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}
