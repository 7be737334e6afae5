package entity

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// VoucherStatus is the stored lifecycle state of a voucher.
// The only stored transition is active -> used; expiry is derived lazily from
// ExpiresAt and never written back, so a voucher past its expiry may still
// read "active" in storage.
type VoucherStatus string

const (
	// VoucherStatusActive means the voucher can still be redeemed.
	VoucherStatusActive VoucherStatus = "active"
	// VoucherStatusUsed means the voucher has been redeemed exactly once.
	VoucherStatusUsed VoucherStatus = "used"
	// VoucherStatusExpired is reserved for explicitly reconciled vouchers.
	VoucherStatusExpired VoucherStatus = "expired"
)

// VoucherCodePrefix marks all voucher codes so scanners can cheaply reject
// non-voucher input before a lookup. The full code format
// DS-<epoch-ms>-<6-char-base36> is a stable wire contract; client-side QR
// auto-fill keys off this prefix.
const VoucherCodePrefix = "DS-"

const voucherCodeSuffixLen = 6

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Voucher is a purchase entitlement tying one user to one purchased deal
// instance. Vouchers are never deleted; they form an append-only history of
// customer entitlements.
type Voucher struct {
	ID        uuid.UUID     `json:"id"`                // The Global Unique Identifier (GUID) for the voucher.
	UserID    uuid.UUID     `json:"user_id"`           // The owning user.
	DealID    uuid.UUID     `json:"deal_id"`           // The purchased deal.
	Code      string        `json:"code"`              // Globally unique redemption code, DS-<epoch-ms>-<suffix>.
	Status    VoucherStatus `json:"status"`            // Stored status; see VoucherStatus for transition rules.
	IssuedAt  time.Time     `json:"issued_at"`         // Timestamp of issuance.
	UsedAt    *time.Time    `json:"used_at,omitempty"` // Set if and only if Status is "used".
	ExpiresAt time.Time     `json:"expires_at"`        // After this time the voucher is logically expired.
	CreatedAt time.Time     `json:"created_at"`        // Timestamp of when this record was created.
	UpdatedAt time.Time     `json:"updated_at"`        // Timestamp of the last modification.
}

// IsExpired reports whether the voucher is logically expired at the given
// time, regardless of the stored status.
func (v *Voucher) IsExpired(now time.Time) bool {
	return v.ExpiresAt.Before(now)
}

// NewVoucherCode generates a redemption code of the form
// DS-<epoch-ms>-<6-char-base36>. The timestamp plus random suffix makes a
// collision probabilistically negligible; the unique index on the code column
// catches the rest.
func NewVoucherCode(now time.Time) string {
	var sb strings.Builder
	sb.WriteString(VoucherCodePrefix)
	sb.WriteString(strconv.FormatInt(now.UnixMilli(), 10))
	sb.WriteByte('-')

	buf := make([]byte, voucherCodeSuffixLen)
	// rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(buf)
	for _, b := range buf {
		sb.WriteByte(base36Alphabet[int(b)%len(base36Alphabet)])
	}

	return sb.String()
}

// HasVoucherCodePrefix reports whether the input looks like a voucher code.
// Used to reject junk scanner input before hitting storage.
func HasVoucherCodePrefix(code string) bool {
	return strings.HasPrefix(code, VoucherCodePrefix)
}

// VoucherDetails is a voucher joined with enough deal, business, and buyer
// context for a human operator to visually confirm the voucher matches the
// person and offer in front of them. This is an anti-fraud control, not
// incidental convenience.
type VoucherDetails struct {
	Voucher         Voucher   `json:"voucher"`
	DealTitle       string    `json:"deal_title"`
	OriginalPrice   int64     `json:"original_price"`
	DiscountedPrice int64     `json:"discounted_price"`
	BusinessID      uuid.UUID `json:"business_id"`
	BusinessName    string    `json:"business_name"`
	BusinessAddress string    `json:"business_address"`
	BuyerEmail      string    `json:"buyer_email"`
}
