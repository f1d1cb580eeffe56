package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	cldapi "github.com/cloudinary/cloudinary-go/v2/api"

	"github.com/stressbuster/stressbuster-api/api"
	"github.com/stressbuster/stressbuster-api/config"
)

// resourceFolder is where admin uploaded resource media lands
const resourceFolder = "stressbuster/resources"

// CloudinaryHandler handles Cloudinary related requests
type CloudinaryHandler struct {
	Base
	Config config.CloudinaryConfig
	now    func() time.Time
}

// SignatureResponse carries everything the dashboard needs for a signed direct upload
type SignatureResponse struct {
	Timestamp    string `json:"timestamp"`
	Signature    string `json:"signature"`
	APIKey       string `json:"apiKey"`
	CloudName    string `json:"cloudName"`
	UploadPreset string `json:"uploadPreset,omitempty"`
	Folder       string `json:"folder"`
}

// GenerateSignature signs upload parameters for resource media
func (c CloudinaryHandler) GenerateSignature(w http.ResponseWriter, r *http.Request) {
	if c.Config.APISecret == "" || c.Config.APIKey == "" || c.Config.CloudName == "" {
		c.Render.Error(w, r, &api.HTTPError{Status: http.StatusServiceUnavailable, Message: "Media uploads are not configured"})
		return
	}
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	timestamp := strconv.FormatInt(now().Unix(), 10)

	params := url.Values{}
	params.Set("timestamp", timestamp)
	params.Set("folder", resourceFolder)
	if c.Config.UploadPreset != "" {
		params.Set("upload_preset", c.Config.UploadPreset)
	}
	signature, err := cldapi.SignParameters(params, c.Config.APISecret)
	if err != nil {
		c.Render.Error(w, r, err)
		return
	}

	c.Render.Success(w, http.StatusOK, "Upload signature generated", SignatureResponse{
		Timestamp:    timestamp,
		Signature:    signature,
		APIKey:       c.Config.APIKey,
		CloudName:    c.Config.CloudName,
		UploadPreset: c.Config.UploadPreset,
		Folder:       resourceFolder,
	})
}
