package sealer

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-page-lock/internal/utils"
	"github.com/MKhiriev/go-page-lock/models"
)

// paramsElementID is the id of the JSON block read by the unlock script.
const paramsElementID = "page-lock-params"

// pageParams is the JSON layout of the embedded parameter block.
type pageParams struct {
	Salt            string `json:"salt"`
	Iterations      int    `json:"iterations"`
	Data            string `json:"data"`
	FormID          string `json:"formId"`
	PasswordInputID string `json:"passwordInputId"`
	ContentID       string `json:"contentId"`
	Storage         string `json:"storage"`
}

var paramsBlockRe = regexp.MustCompile(
	`(?s)<script type="application/json" id="` + paramsElementID + `">(.*?)</script>`)

func newPageParams(env models.Envelope) pageParams {
	return pageParams{
		Salt:            utils.EncodeBase64(env.Params.Salt),
		Iterations:      env.Params.Iterations,
		Data:            utils.EncodeBase64(env.EncryptedData),
		FormID:          env.FormID,
		PasswordInputID: env.PasswordInputID,
		ContentID:       env.ContentID,
		Storage:         string(env.StorageMode),
	}
}

// paramsBlock renders the parameter block. encoding/json escapes <, > and &
// so the payload cannot close the script element.
func paramsBlock(p pageParams) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode page params: %w", err)
	}
	return `<script type="application/json" id="` + paramsElementID + `">` + string(data) + `</script>`, nil
}

// ParsePage extracts the unlock parameters embedded in a sealed page.
func ParsePage(page []byte) (models.Envelope, error) {
	match := paramsBlockRe.FindSubmatch(page)
	if match == nil {
		return models.Envelope{}, ErrParamsNotFound
	}

	var p pageParams
	if err := json.Unmarshal(match[1], &p); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %w", ErrInvalidPageParams, err)
	}

	salt, err := utils.DecodeBase64(p.Salt)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: salt: %w", ErrInvalidPageParams, err)
	}
	if len(salt) == 0 {
		return models.Envelope{}, fmt.Errorf("%w: empty salt", ErrInvalidPageParams)
	}
	if p.Iterations <= 0 {
		return models.Envelope{}, fmt.Errorf("%w: iterations must be positive", ErrInvalidPageParams)
	}

	data, err := utils.DecodeBase64(p.Data)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: data: %w", ErrInvalidPageParams, err)
	}
	if len(data) < models.NonceSize+models.TagSize {
		return models.Envelope{}, fmt.Errorf("%w: ciphertext too short", ErrInvalidPageParams)
	}

	mode, err := models.ParseStorageMode(p.Storage)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %w", ErrInvalidPageParams, err)
	}

	return models.Envelope{
		Params:          models.DerivationParameters{Salt: salt, Iterations: p.Iterations},
		EncryptedData:   data,
		FormID:          p.FormID,
		PasswordInputID: p.PasswordInputID,
		ContentID:       p.ContentID,
		StorageMode:     mode,
	}, nil
}
