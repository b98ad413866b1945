package scene

const sampleScene = `
version: "1.2.0"
humanoid:
  Hips: Armature/Hips
  Spine: Armature/Hips/Spine
root:
  name: Avatar
  children:
    - name: Armature
      children:
        - name: Hips
          position: [0, 1, 0]
          children:
            - name: Spine
              position: [0, 0.2, 0]
    - name: Body
      renderer:
        skinned: true
        root_bone: Armature/Hips
        bones: [Armature/Hips, Armature/Hips/Spine]
        blend_shapes:
          - {name: Smile, weight: 0}
        materials:
          - {name: Skin}
    - name: Tail
      active: false
      physbone:
        root: Tail
        ignore: [Tail/Tip]
      children:
        - name: Tip
      features:
        - type: toggle
          name: Tail
          state:
            actions:
              - {type: object_toggle, obj: Tip}
`
