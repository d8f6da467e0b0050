package severity // want `^\[LK0902 critical\] hello$`
