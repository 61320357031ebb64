package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"storefront/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLink = "https://shop.example.com/signup?ref=AB12CD34"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.Config
		wantSize  int
		wantLevel qrcode.RecoveryLevel
	}{
		{"nil config", nil, defaultSize, qrcode.Medium},
		{"no qrcode section", &config.Config{}, defaultSize, qrcode.Medium},
		{"low error correction", &config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "L"}}, 128, qrcode.Low},
		{"quartile error correction", &config.Config{QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "q"}}, 256, qrcode.High},
		{"highest error correction", &config.Config{QRCode: &config.QRCodeConfig{Size: 512, ErrorCorrectionLevel: "H"}}, 512, qrcode.Highest},
		{"size out of range", &config.Config{QRCode: &config.QRCodeConfig{Size: 5000, ErrorCorrectionLevel: "invalid"}}, defaultSize, qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.cfg).(*qrcodeService)
			assert.Equal(t, tt.wantSize, svc.size)
			assert.Equal(t, tt.wantLevel, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GenerateReferralQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}})

	qrBytes, err := svc.GenerateReferralQR(testLink)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestQRCodeService_GenerateReferralQR_EmptyLink(t *testing.T) {
	svc := NewQRCodeService(nil)

	_, err := svc.GenerateReferralQR("  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "referral link is empty")
}
