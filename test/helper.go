package test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"

	"github.com/keitakn/aws-rekognition-resource-providers/application"
	"github.com/pkg/errors"
)

// testdataDir resolves test/testdata from this file, so scenario packages can load fixtures from any working directory.
func testdataDir() string {
	_, file, _, _ := runtime.Caller(0)

	return filepath.Join(filepath.Dir(file), "testdata")
}

func ReadFixture(name string) ([]byte, error) {
	bytes, err := os.ReadFile(filepath.Join(testdataDir(), name))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read fixture %s", name)
	}

	return bytes, nil
}

// LoadHandlerRequest decodes a fixture holding the payload CloudFormation sends to the Lambda.
func LoadHandlerRequest(name string) (application.HandlerRequest, error) {
	var req application.HandlerRequest

	bytes, err := ReadFixture(name)
	if err != nil {
		return req, err
	}

	if err := json.Unmarshal(bytes, &req); err != nil {
		return req, errors.Wrapf(err, "failed to decode fixture %s", name)
	}

	return req, nil
}

// ResumeWith builds the follow-up invocation CloudFormation makes after an IN_PROGRESS event.
func ResumeWith(req application.HandlerRequest, callbackContext interface{}) (application.HandlerRequest, error) {
	raw, err := json.Marshal(callbackContext)
	if err != nil {
		return req, errors.Wrap(err, "failed to encode callbackContext")
	}

	req.CallbackContext = raw

	return req, nil
}
