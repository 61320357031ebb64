package service

// QRCodeService renders QR codes for shareable links.
type QRCodeService interface {
	// GenerateReferralQR renders the referral link as a PNG image.
	GenerateReferralQR(link string) ([]byte, error)
}
