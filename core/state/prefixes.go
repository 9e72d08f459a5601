package state

import (
	"encoding/hex"
	"fmt"
)

var (
	profilePrefix       = "social/profile/"
	profileHandlePrefix = "social/profile/handle/"
	profileOwnerPrefix  = "social/profile/owner/"
	contentPrefix       = "social/content/"
	tipPrefix           = "social/tip/"
	followPrefix        = "social/follow/"
	communityPrefix     = "social/community/"
	membershipPrefix    = "social/member/"
	engagementPrefix    = "social/engagement/"
	protocolKeyBytes    = []byte("social/protocol")
	sequencePrefix      = "social/seq/"
	balancePrefix       = "ledger/balance/"
)

func profileKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s%d", profilePrefix, id))
}

func profileHandleKey(handle string) []byte {
	return []byte(profileHandlePrefix + handle)
}

func profileOwnerKey(owner [20]byte) []byte {
	return []byte(profileOwnerPrefix + hex.EncodeToString(owner[:]))
}

func contentKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s%d", contentPrefix, id))
}

func tipKey(contentID uint64, tipper [20]byte) []byte {
	return []byte(fmt.Sprintf("%s%d/%x", tipPrefix, contentID, tipper))
}

func followKey(followerID, followingID uint64) []byte {
	return []byte(fmt.Sprintf("%s%d/%d", followPrefix, followerID, followingID))
}

func communityKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s%d", communityPrefix, id))
}

func membershipKey(communityID, memberID uint64) []byte {
	return []byte(fmt.Sprintf("%s%d/%d", membershipPrefix, communityID, memberID))
}

func engagementKey(profileID, period uint64) []byte {
	return []byte(fmt.Sprintf("%s%d/%d", engagementPrefix, profileID, period))
}

func sequenceKey(name string) []byte {
	return []byte(sequencePrefix + name)
}

func balanceKey(addr [20]byte) []byte {
	return []byte(balancePrefix + hex.EncodeToString(addr[:]))
}
