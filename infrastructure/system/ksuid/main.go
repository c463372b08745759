package ksuid

import (
	domainKsuid "github.com/kaiwahq/kaiwactl/domain/system/ksuid"
	"github.com/segmentio/ksuid"
)

type KsuidGenerator struct{}

func NewKsuidGenerator() domainKsuid.IKsuid {
	return &KsuidGenerator{}
}

func (k *KsuidGenerator) New() string {
	return ksuid.New().String()
}
