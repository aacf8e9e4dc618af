package infrastructure

//go:generate mockgen -source=unique_id_generator.go -destination=../mock/mock_unique_id_generator.go -package=mock

import (
	"github.com/google/uuid"
)

type UniqueIdGenerator interface {
	Generate() (string, error)
}

type UuidGenerator struct{}

func (g *UuidGenerator) Generate() (string, error) {
	uid, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	return uid.String(), nil
}

// TokenUuidGenerator returns the same id for the same token, so a request that CloudFormation
// re-delivers ends up with the same generated resource name. Without a token it falls back to a random id.
type TokenUuidGenerator struct {
	Token string
}

func (g *TokenUuidGenerator) Generate() (string, error) {
	if g.Token == "" {
		return (&UuidGenerator{}).Generate()
	}

	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(g.Token)).String(), nil
}
