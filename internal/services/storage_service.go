package services

import (
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/ELIUD25/empire/config"
	"github.com/aliyun/alibaba-cloud-sdk-go/services/sts"
	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

// STSCredentials are short-lived credentials the client can use for direct
// browser uploads of task attachments, ad thumbnails and blog images.
type STSCredentials struct {
	AccessKeyId     string `json:"accessKeyId"`
	AccessKeySecret string `json:"accessKeySecret"`
	SecurityToken   string `json:"securityToken"`
	Expiration      string `json:"expiration"`
	Region          string `json:"region"`
	Bucket          string `json:"bucket"`
}

func GetOSSTSToken() (*STSCredentials, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// STS client wants the region ID without the "oss-" prefix
	stsRegion := cfg.OSSRegion
	if after, ok := strings.CutPrefix(stsRegion, "oss-"); ok {
		stsRegion = after
	}

	client, err := sts.NewClientWithAccessKey(stsRegion, cfg.OSSAccessKeyID, cfg.OSSAccessKeySecret)
	if err != nil {
		return nil, err
	}

	request := sts.CreateAssumeRoleRequest()
	request.Scheme = "https"
	request.RoleArn = cfg.OSSRoleArn
	request.RoleSessionName = "empire-upload-session"
	request.DurationSeconds = "3600"

	response, err := client.AssumeRole(request)
	if err != nil {
		return nil, err
	}

	return &STSCredentials{
		AccessKeyId:     response.Credentials.AccessKeyId,
		AccessKeySecret: response.Credentials.AccessKeySecret,
		SecurityToken:   response.Credentials.SecurityToken,
		Expiration:      response.Credentials.Expiration,
		Region:          cfg.OSSRegion,
		Bucket:          cfg.OSSBucketName,
	}, nil
}

// UploadAttachment streams a multipart file to OSS under uploads/<year>/<month>
// with a collision-proof object key and returns the public URL.
func UploadAttachment(fileHeader *multipart.FileHeader) (string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", err
	}

	creds, err := GetOSSTSToken()
	if err != nil {
		return "", fmt.Errorf("failed to get STS token: %w", err)
	}

	client, err := oss.New(
		cfg.OSSEndpoint,
		creds.AccessKeyId,
		creds.AccessKeySecret,
		oss.SecurityToken(creds.SecurityToken),
		oss.Timeout(60, 120),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create OSS client: %w", err)
	}

	bucket, err := client.Bucket(cfg.OSSBucketName)
	if err != nil {
		return "", fmt.Errorf("failed to get bucket: %w", err)
	}

	now := time.Now()
	objectKey := fmt.Sprintf("uploads/%d/%02d/%s%s",
		now.Year(), now.Month(), uuid.New().String(), path.Ext(fileHeader.Filename))

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := bucket.PutObject(objectKey, file); err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	endpoint := cfg.OSSEndpoint
	scheme := "https"
	if idx := strings.Index(endpoint, "://"); idx != -1 {
		scheme = endpoint[:idx]
		endpoint = endpoint[idx+3:]
	}
	return fmt.Sprintf("%s://%s.%s/%s", scheme, cfg.OSSBucketName, endpoint, objectKey), nil
}
