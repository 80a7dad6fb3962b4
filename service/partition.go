package service

import (
	"github.com/palmwatch/millatlas/uml"
)

// Partition holds the certification split of the dataset. Certified
// and NotCertified are disjoint; records whose RSPO_STATU matches
// neither recognized value end up in neither subset and are only
// visible through the Other count.
type Partition struct {
	Certified    []uml.Record
	NotCertified []uml.Record
	Other        int
}

// CertifiedCount returns the number of certified mills.
func (p Partition) CertifiedCount() int {
	return len(p.Certified)
}

// NotCertifiedCount returns the number of not certified mills.
func (p Partition) NotCertifiedCount() int {
	return len(p.NotCertified)
}

// PartitionByCertification splits the dataset by exact RSPO_STATU
// equality into certified and not-certified subsets. Records matching
// neither literal are dropped from both subsets, matching how the
// dataset has always been read; the Other count makes the dropped
// rows visible without changing that behavior.
func PartitionByCertification(ds *uml.Dataset) Partition {
	var p Partition
	for _, rec := range ds.Records() {
		switch {
		case rec.Certified():
			p.Certified = append(p.Certified, rec)
		case rec.NotCertified():
			p.NotCertified = append(p.NotCertified, rec)
		default:
			p.Other++
		}
	}
	return p
}
