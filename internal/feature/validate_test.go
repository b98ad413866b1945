package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		model   Model
		wantErr bool
	}{
		{"link ok", ArmatureLink{PropBone: "Bone", BoneOnAvatar: "Hips"}, false},
		{"link without target", ArmatureLink{PropBone: "Bone"}, true},
		{"link bad mode", ArmatureLink{PropBone: "Bone", BonePathOnAvatar: "A", Mode: "glue"}, true},
		{"toggle ok", Toggle{Name: "Hat", State: State{Actions: []Action{{Type: ActionObjectToggle, Obj: "Hat"}}}}, false},
		{"toggle unnamed", Toggle{}, true},
		{"toggle bad action", Toggle{Name: "Hat", State: State{Actions: []Action{{Type: "dance"}}}}, true},
		{"toggle clip missing", Toggle{Name: "Hat", State: State{Actions: []Action{{Type: ActionAnimationClip}}}}, true},
		{"blend empty", BlendShapeSet{}, true},
		{"material ok", MaterialSwap{Renderer: "Body", Material: "Red"}, false},
		{"material negative slot", MaterialSwap{Renderer: "Body", Material: "Red", Slot: -1}, true},
		{"scale zero", ScaleSet{Obj: "Hat"}, true},
		{"frame ok", FrameSelect{Renderer: "Face", Frame: 3}, false},
		{"reset without param", PhysBoneReset{}, true},
		{"plug auto", HapticPlug{AutoLength: true, AutoRadius: true}, false},
		{"plug no length", HapticPlug{AutoRadius: true}, true},
		{"socket bad mode", HapticSocket{Mode: "tube"}, true},
		{"force", ForceExplicitValues{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(New(tt.model))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.Error(t, Validate(Descriptor{}))
}
