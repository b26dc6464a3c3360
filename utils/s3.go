package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var (
	s3Client      *s3.Client
	s3Bucket      string
	cloudFrontURL string
)

// InitS3 must be called once at startup before any upload.
func InitS3(region, bucket, cdnURL string) error {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return fmt.Errorf("load AWS config for S3: %w", err)
	}
	s3Client = s3.NewFromConfig(cfg)
	s3Bucket = bucket
	cloudFrontURL = cdnURL
	return nil
}

// UploadBase64Image stores a "data:<mime>;base64,<data>" URI under the
// given key prefix and returns the public URL.
func UploadBase64Image(dataURI, keyPrefix string) (string, error) {
	if s3Client == nil {
		return "", fmt.Errorf("S3 client not initialized")
	}

	parts := strings.Split(dataURI, ",")
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:") {
		return "", fmt.Errorf("invalid base64 image")
	}

	mediaType := strings.TrimPrefix(parts[0], "data:")     // "image/jpeg;base64"
	contentType := strings.SplitN(mediaType, ";", 2)[0]    // "image/jpeg"

	ext := extensionFor(contentType)

	imageData, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	key := fmt.Sprintf("%s/%d%s", keyPrefix, time.Now().UnixNano(), ext)

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", cloudFrontURL, key), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 {
		return "." + parts[1]
	}
	return ""
}
