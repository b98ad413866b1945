package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var humanoid = map[string]string{
	"Hips":          "Armature/Hips",
	"Spine":         "Armature/Hips/Spine",
	"Chest":         "Armature/Hips/Spine/Chest",
	"Head":          "Armature/Hips/Spine/Chest/Neck/Head",
	"LeftUpperArm":  "Armature/Hips/Spine/Chest/Shoulder.L/UpperArm.L",
	"RightUpperArm": "Armature/Hips/Spine/Chest/Shoulder.R/UpperArm.R",
	"LeftHand":      "Armature/Hips/Spine/Chest/Shoulder.L/UpperArm.L/LowerArm.L/Hand.L",
}

func TestFindBone(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr error
	}{
		{"Hips", "Hips", nil},
		{"upper_arm.L", "LeftUpperArm", nil},
		{"UpperArm_R", "RightUpperArm", nil},
		{"mixamorig:LeftHand", "LeftHand", nil},
		{"Tail", "", ErrNoBone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindBone(humanoid, tt.name)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Bone)
			assert.Equal(t, humanoid[tt.want], got.Path)
		})
	}
}

func TestFindBoneAmbiguous(t *testing.T) {
	twins := map[string]string{"Ear": "A/Ear", "Ear.": "B/Ear"}

	_, err := FindBone(twins, "ear")
	require.ErrorIs(t, err, ErrAmbiguousBone)
	assert.Contains(t, err.Error(), "Ear (1.00)")
}

func TestRankBonesDeterminism(t *testing.T) {
	first := RankBones(humanoid, "Arm")

	for range 10 {
		assert.Equal(t, first, RankBones(humanoid, "Arm"))
	}
}

func TestCandidateListHighConfidence(t *testing.T) {
	list := CandidateList{{Bone: "A", Score: 0.95}, {Bone: "B", Score: 0.5}}
	assert.Equal(t, "A", list.HighConfidence(0.9, 0.1).Bone)
	assert.Nil(t, list.HighConfidence(0.99, 0.1))

	tight := CandidateList{{Bone: "A", Score: 0.95}, {Bone: "B", Score: 0.94}}
	assert.Nil(t, tight.HighConfidence(0.9, 0.05))
	assert.True(t, tight.IsAmbiguous(0.05))
	assert.Nil(t, CandidateList{}.Best())
	assert.Len(t, tight.Top(5), 2)
}
