package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/shopforge/shopforge/internal/config"
	"github.com/shopforge/shopforge/internal/pg"
	"github.com/shopforge/shopforge/internal/provision"
	"github.com/shopforge/shopforge/internal/repo"
	"github.com/shopforge/shopforge/pkg/clients"
	"github.com/shopforge/shopforge/pkg/providers/chatbot"
	"github.com/shopforge/shopforge/pkg/providers/compute"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))
	queue := provision.NewQueue(repos.JobRepo)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	computeClient := compute.New("http://compute", "token", "shopforge.app", httpClient)
	chatbotClient := chatbot.New("http://chatbot", "token", httpClient)

	cfg := &config.Config{ShopCost: 1000, ChatbotCost: 250}
	services := New(cfg, repos, queue, computeClient, chatbotClient)

	assert.NotNil(t, services.ShopService)
	assert.NotNil(t, services.BillingService)
	assert.NotNil(t, services.FeatureService)
	assert.NotNil(t, services.CleanupService)
	assert.NotNil(t, services.WebhookService)
}
