package domain

import "time"

type User struct {
	ID                int       `db:"id"`
	Email             string    `db:"email"`
	PasswordHash      string    `db:"password_hash"`
	Credits           int64     `db:"credits"`
	FirstShopRedeemed bool      `db:"first_shop_redeemed"`
	CreatedAt         time.Time `db:"created_at"`
}

type TxReason string

const (
	ReasonInitialGrant      TxReason = "initial_grant"
	ReasonShopCreation      TxReason = "shop_creation"
	ReasonFeatureEnablement TxReason = "feature_enablement"
	ReasonRefund            TxReason = "refund"
	ReasonTopup             TxReason = "topup"
)

// CreditTransaction is an append-only ledger row. BalanceAfter is the user's
// balance immediately after this entry was applied.
type CreditTransaction struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	Amount        int64     `db:"amount"`
	Reason        TxReason  `db:"reason"`
	RelatedShopID *int      `db:"related_shop_id"`
	BalanceAfter  int64     `db:"balance_after"`
	CreatedAt     time.Time `db:"created_at"`
}

type ShopStatus string

const (
	ShopCreating  ShopStatus = "creating"
	ShopActive    ShopStatus = "active"
	ShopFailed    ShopStatus = "failed"
	ShopSuspended ShopStatus = "suspended"
	ShopDeleted   ShopStatus = "deleted"
)

type Shop struct {
	ID                    int        `db:"id"`
	OwnerID               int        `db:"owner_id"`
	ShopName              string     `db:"shop_name"`
	Slug                  string     `db:"slug"`
	AppName               string     `db:"app_name"`
	Status                ShopStatus `db:"status"`
	Plan                  string     `db:"plan"`
	MaxProducts           int        `db:"max_products"`
	MaxOrders             int        `db:"max_orders"`
	CustomDomain          string     `db:"custom_domain"`
	ExpiresAt             *time.Time `db:"expires_at"`
	ChatbotEnabled        bool       `db:"chatbot_enabled"`
	ChatbotBotID          string     `db:"chatbot_bot_id"`
	ChatbotEnabledAt      *time.Time `db:"chatbot_enabled_at"`
	DeletedAt             *time.Time `db:"deleted_at"`
	ScheduledHardDeleteAt *time.Time `db:"scheduled_hard_delete_at"`
	CreatedAt             time.Time  `db:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at"`
}

type DeploymentStatus string

const (
	DeploymentQueued  DeploymentStatus = "queued"
	DeploymentRunning DeploymentStatus = "running"
	DeploymentSuccess DeploymentStatus = "success"
	DeploymentFailed  DeploymentStatus = "failed"
)

// Terminal reports whether no further transitions are allowed from s.
func (s DeploymentStatus) Terminal() bool {
	return s == DeploymentSuccess || s == DeploymentFailed
}

type Deployment struct {
	ID            int               `db:"id"`
	ShopID        int               `db:"shop_id"`
	Status        DeploymentStatus  `db:"status"`
	ExternalRunID string            `db:"external_run_id"`
	Events        []DeploymentEvent `db:"events"`
	ErrorMessage  string            `db:"error_message"`
	StartedAt     *time.Time        `db:"started_at"`
	CompletedAt   *time.Time        `db:"completed_at"`
	CreatedAt     time.Time         `db:"created_at"`
}

type ShopSecret struct {
	ID            int       `db:"id"`
	ShopID        int       `db:"shop_id"`
	SSOSecret     string    `db:"sso_secret"`
	WebhookSecret string    `db:"webhook_secret"`
	CreatedAt     time.Time `db:"created_at"`
}

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

const FeatureChatbot = "chatbot"

type Subscription struct {
	ID        int                `db:"id"`
	ShopID    int                `db:"shop_id"`
	Feature   string             `db:"feature"`
	Status    SubscriptionStatus `db:"status"`
	ExpiresAt time.Time          `db:"expires_at"`
	CreatedAt time.Time          `db:"created_at"`
}

type AuditLog struct {
	ID           int       `db:"id"`
	ActorID      int       `db:"actor_id"`
	Action       string    `db:"action"`
	ResourceType string    `db:"resource_type"`
	ResourceID   int       `db:"resource_id"`
	Details      string    `db:"details"`
	CreatedAt    time.Time `db:"created_at"`
}

type JobStatus string

const (
	JobQueued  JobStatus = "queued"
	JobRunning JobStatus = "running"
	JobDone    JobStatus = "done"
	JobFailed  JobStatus = "failed"
)

// ProvisionPayload is everything the remote workflow needs to deploy a shop.
type ProvisionPayload struct {
	AppName           string `json:"app_name"`
	Slug              string `json:"slug"`
	ShopName          string `json:"shop_name"`
	Plan              string `json:"plan"`
	CustomDomain      string `json:"custom_domain,omitempty"`
	AdminEmail        string `json:"admin_email"`
	AdminPasswordHash string `json:"admin_password_hash"`
}

// ProvisionJob is one durable unit of provisioning work. ChargedAmount is
// what the owner paid for this shop, zero when the free first-shop grant
// covered it; it is the amount handed back if the job dies before a workflow
// was ever dispatched.
type ProvisionJob struct {
	ID            int              `db:"id"`
	DeploymentID  int              `db:"deployment_id"`
	ShopID        int              `db:"shop_id"`
	UserID        int              `db:"user_id"`
	ChargedAmount int64            `db:"charged_amount"`
	Payload       ProvisionPayload `db:"payload"`
	Status        JobStatus        `db:"status"`
	Attempts      int              `db:"attempts"`
	NextRunAt     time.Time        `db:"next_run_at"`
	ClaimedAt     *time.Time       `db:"claimed_at"`
	LastError     string           `db:"last_error"`
	CreatedAt     time.Time        `db:"created_at"`
}

// MonitorLease is the durable record of which process currently supervises a
// deployment. A lease with a stale heartbeat may be stolen by another process.
type MonitorLease struct {
	DeploymentID int       `db:"deployment_id"`
	Owner        string    `db:"owner"`
	HeartbeatAt  time.Time `db:"heartbeat_at"`
}
